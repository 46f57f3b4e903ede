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

// Package source opens the input files of a run. Compressed files are
// decompressed transparently based on their suffix.
package source

import (
	"compress/bzip2"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

// Open opens the file at path for reading. Files ending in .bz2, .gz or .zst
// are decompressed; any other file is returned as is. The returned closer
// releases both the decompressor and the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, serrors.Wrap("opening input", err, "path", path)
	}
	var r io.Reader
	var closeDec func()
	switch {
	case strings.HasSuffix(path, ".bz2"):
		r = bzip2.NewReader(f)
	case strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, serrors.Wrap("reading gzip header", err, "path", path)
		}
		r, closeDec = gr, func() { gr.Close() }
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, serrors.Wrap("creating zstd reader", err, "path", path)
		}
		r, closeDec = zr, zr.Close
	default:
		return f, nil
	}
	return &readCloser{Reader: r, file: f, closeDec: closeDec}, nil
}

type readCloser struct {
	io.Reader
	file     *os.File
	closeDec func()
}

func (rc *readCloser) Close() error {
	if rc.closeDec != nil {
		rc.closeDec()
	}
	return rc.file.Close()
}

// Decode returns a reader that converts the text read from r from the
// encoding named label to UTF-8. Any WHATWG encoding label is accepted, e.g.
// "latin1" or "utf-8".
func Decode(r io.Reader, label string) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, serrors.Wrap("unknown encoding", err, "label", label)
	}
	return enc.NewDecoder().Reader(r), nil
}
