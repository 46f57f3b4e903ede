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

import (
	"io"
	"strings"

	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

// CtxMap contains values samplers may substitute into their output.
type CtxMap map[string]string

// CtxExecutable is the CtxMap key naming the binary a sample is written for.
const CtxExecutable = "executable"

// WriteSample writes the sample blocks of samplers to dst in order. The block
// of a TableSampler is put under a [path.name] header and indented. It panics
// if dst cannot be written.
func WriteSample(dst io.Writer, path Path, ctx CtxMap, samplers ...Sampler) {
	for _, sampler := range samplers {
		var block strings.Builder
		ts, ok := sampler.(TableSampler)
		if !ok {
			sampler.Sample(&block, path, ctx)
			WriteString(dst, block.String())
			continue
		}
		p := path.Extend(ts.ConfigName())
		ts.Sample(&block, p, ctx)
		WriteString(dst, "\n["+strings.Join(p, ".")+"]\n")
		WriteString(dst, indent(block.String()))
	}
}

// WriteString writes s to dst. It panics if an error occurs.
func WriteString(dst io.Writer, s string) {
	if _, err := io.WriteString(dst, s); err != nil {
		panic(serrors.Wrap("writing sample", err))
	}
}

// indent prefixes every non-blank line of block with four spaces. Blank lines
// are emptied.
func indent(block string) string {
	var b strings.Builder
	for line := range strings.Lines(block) {
		if strings.TrimSpace(line) == "" {
			if strings.HasSuffix(line, "\n") {
				b.WriteByte('\n')
			}
			continue
		}
		b.WriteString("    ")
		b.WriteString(line)
	}
	return b.String()
}
