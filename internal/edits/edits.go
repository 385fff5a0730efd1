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

// Package edits groups the engine's edit records into context hunks for the user facing text
// output.
//
// The engine emits a compressed script: one record per run of deleted or inserted elements, in
// forward order, with a deletion preceding an insertion at the same gap. Hunk grouping works
// directly on these records; there is no per-element representation in between.
package edits

import (
	"mwrd.io/versus/internal/config"
	"mwrd.io/versus/internal/myers"
)

// Hunk describes a group of script records that are close enough to share context lines.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
	E0, E1 int // Range of script records covered by the hunk.
	Edits  int // Rows in the hunk: matches, deletions and insertions.
}

// Hunks groups the records of a script for inputs of length n and m into hunks, each padded
// with up to cfg.Context matching lines of context. Two records share a hunk when the matched
// stretch between them is at most twice the context, so the padded ranges never overlap.
//
// edits is the total number of rows over all hunks.
func Hunks(script []myers.Edit, n, m int, cfg config.Config) (hunks []Hunk, edits int) {
	context := cfg.Context

	var h Hunk
	open := false // a hunk is being assembled
	ax, ay := 0, 0
	ins := 0 // inserted lines in the open hunk
	flush := func() {
		h.S1 = min(n, ax+context)
		h.T1 = min(m, ay+context)
		h.Edits = (h.S1 - h.S0) + ins
		hunks = append(hunks, h)
		edits += h.Edits
		ins = 0
		open = false
	}

	for i, e := range script {
		// A matched stretch longer than two contexts separates hunks; anything shorter is
		// swallowed by the padding of both neighbours.
		if open && e.X-ax > 2*context {
			flush()
		}
		if !open {
			h = Hunk{
				S0: max(0, e.X-context),
				T0: max(0, e.Y-context),
				E0: i,
			}
			open = true
		}
		h.E1 = i + 1

		// Advance the aligned cursor past the record. A deletion only consumes x, an
		// insertion only y; the max keeps the cursor in place for the insertion half of a
		// substitution pair, which starts at the deletion's position.
		if e.Insert {
			ins += e.Len
			ax = max(ax, e.X)
			ay = max(ay, e.Y+e.Len)
		} else {
			ax = max(ax, e.X+e.Len)
			ay = max(ay, e.Y)
		}
	}
	if open {
		flush()
	}
	return hunks, edits
}
