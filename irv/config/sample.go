// Copyright 2026 Internet Route Verification Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

const scanSample = `# The registry dump, plain or compressed with bzip2, gzip or zstd.
# (default ripe.db)
registry_dump = "ripe.db"

# The character encoding of the dump as a WHATWG label. (default latin1)
encoding = "latin1"

# Objects with a larger body are skipped. Negative disables the limit.
# (default %d)
max_body_bytes = 1048576

# The scan stops once more than mntner_cap maintainers and more than route_cap
# route objects are stored. Negative disables a cap. (default %d)
mntner_cap = 1000
route_cap = 1000
`

const snapshotsSample = `# The IR snapshot, a JSON file or a directory of JSON files.
# (default parsed_all)
ir = "parsed_all"

# The CAIDA AS relationship file. (default 20230701.as-rel.bz2)
as_rel = "20230701.as-rel.bz2"

# The table dump in bgpdump -m format. (default rib.20230619.2200.bz2)
table_dump = "rib.20230619.2200.bz2"
`

const recordSample = `# The number of observed routes stored per run. Negative disables the cap.
# (default %d)
observed_route_cap = 256
`

const metricsSample = `# The file the prometheus metrics are written to at the end of a run. Empty
# disables the export. (default "")
textfile = "/var/lib/node_exporter/irv.prom"
`

const outputSample = `# The format of the run summary, human, json or yaml. (default human)
format = "human"
`
