// Copyright 2026 The versus Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package textdiff provides functions to efficiently compare text line by line.
package textdiff

import (
	"bytes"
	"fmt"
	"unsafe"

	"mwrd.io/versus"
	"mwrd.io/versus/internal/config"
	"mwrd.io/versus/internal/edits"
	"mwrd.io/versus/internal/myers"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format.
//
// The following options are supported: [versus.Context], [versus.StoreLimit]
//
// When a store limit set with [versus.StoreLimit] is hit, the returned diff is still valid, just
// not minimal, and err is [versus.ErrStoreExhausted]; otherwise err is nil.
//
// The output is deterministic: identical inputs produce identical output on every call.
func Unified(x, y string, opts ...versus.Option) (string, error) {
	// This hackery lets us support both string and []byte types with the same implementation
	// without copying the inputs in or the outputs out. It's safe because we never modify the
	// inputs or retain the output anywhere.
	xp, yp := unsafe.StringData(x), unsafe.StringData(y)
	out, err := UnifiedBytes(unsafe.Slice(xp, len(x)), unsafe.Slice(yp, len(y)), opts)
	return unsafe.String(unsafe.SliceData(out), len(out)), err
}

// UnifiedBytes compares the lines in x and y and returns the changes necessary to convert from
// one to the other in unified format.
//
// The following options are supported: [versus.Context], [versus.StoreLimit]
//
// When a store limit set with [versus.StoreLimit] is hit, the returned diff is still valid, just
// not minimal, and err is [versus.ErrStoreExhausted]; otherwise err is nil.
//
// The output is deterministic: identical inputs produce identical output on every call.
func UnifiedBytes(x, y []byte, opts []versus.Option) ([]byte, error) {
	cfg := config.FromOptions(opts, config.Context|config.StoreLimit)

	xlines := bytes.SplitAfter(x, []byte{'\n'})
	ylines := bytes.SplitAfter(y, []byte{'\n'})

	// SplitAfter adds an empty element after the last '\n', we need to remove it because it
	// doesn't count as a line for diffs.
	if len(xlines[len(xlines)-1]) == 0 {
		xlines = xlines[:len(xlines)-1]
	}
	if len(ylines[len(ylines)-1]) == 0 {
		ylines = ylines[:len(ylines)-1]
	}

	// The engine requires non-empty inputs; a side with no lines is all insertions or all
	// deletions and is scripted here directly.
	var script []myers.Edit
	complete := true
	switch {
	case len(xlines) == 0 && len(ylines) == 0:
		return nil, nil
	case len(xlines) == 0:
		script = []myers.Edit{{X: 0, Y: 0, Len: len(ylines), Insert: true}}
	case len(ylines) == 0:
		script = []myers.Edit{{X: 0, Y: 0, Len: len(xlines)}}
	default:
		script, complete = myers.Edits(xlines, ylines, bytes.Equal, cfg.StoreLimit)
	}

	var err error
	if !complete {
		err = versus.ErrStoreExhausted
	}

	hunks, _ := edits.Hunks(script, len(xlines), len(ylines), cfg)
	if len(hunks) == 0 {
		return nil, err
	}

	// Format output. Each hunk walks its slice of the script, interleaving the matched
	// stretches between the records.
	var b bytes.Buffer
	for hi, h := range hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.S0+1, h.S1-h.S0, h.T0+1, h.T1-h.T0)
		s, t := h.S0, h.T0
		write := func(prefix string, line []byte) {
			b.WriteString(prefix)
			b.Write(line)
			if hi == len(hunks)-1 && (s == h.S1 || t == h.T1) && line[len(line)-1] != '\n' {
				b.WriteString("\n\\ No newline at end of file\n")
			}
		}
		for _, e := range script[h.E0:h.E1] {
			for s < e.X {
				line := xlines[s]
				s++
				t++
				write(prefixMatch, line)
			}
			if e.Insert {
				for i := range e.Len {
					line := ylines[e.Y+i]
					t++
					write(prefixInsert, line)
				}
			} else {
				for i := range e.Len {
					line := xlines[e.X+i]
					s++
					write(prefixDelete, line)
				}
			}
		}
		for s < h.S1 {
			line := xlines[s]
			s++
			t++
			write(prefixMatch, line)
		}
	}
	return b.Bytes(), err
}
