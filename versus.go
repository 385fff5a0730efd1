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

package versus

import (
	"errors"

	"mwrd.io/versus/internal/config"
	"mwrd.io/versus/internal/myers"
)

// Op describes an edit operation.
//
//go:generate stringer -type=Op
type Op int8

const (
	Delete Op = -1 // Deletion of elements from the left slice.
	Insert Op = 1  // Insertion of elements from the right slice.
)

// Match describes a maximal run of matching elements: x[PosX:PosX+Len] equals y[PosY:PosY+Len].
type Match struct {
	PosX, PosY int // Start of the run in x and y.
	Len        int // Number of consecutive matching elements.
}

// Edit describes a single edit of a shortest edit script.
//
//   - For Insert, y[PosY:PosY+Len] is inserted in front of x[PosX].
//   - For Delete, x[PosX:PosX+Len] is removed; PosY is the corresponding position in y.
//
// A Delete directly followed by an Insert at the same position describes a substitution; callers
// that care may fuse such pairs.
type Edit struct {
	PosX, PosY int // Position of the edit in x and y.
	Len        int // Number of elements inserted or deleted.
	Op         Op
}

var (
	// ErrEmptyInput reports that one of the inputs has no elements.
	ErrEmptyInput = errors.New("versus: empty input")

	// ErrInputTooLarge reports that one of the inputs exceeds 2³²-1 elements.
	ErrInputTooLarge = errors.New("versus: input too large")

	// ErrStoreExhausted reports that the candidate store hit the configured node limit. The
	// result returned together with this error is still valid: for LCS it is a common
	// subsequence that is not necessarily a prefix of a longest one, for SES it is a correct but
	// not necessarily shortest script. Use errors.Is to distinguish a truncated result from a complete one.
	ErrStoreExhausted = errors.New("versus: candidate store exhausted")
)

// LCS compares the contents of x and y and returns the match runs of a longest common
// subsequence, in forward order.
//
// If x and y are identical, the output is a single run covering both inputs; if they share no
// elements, the output has length zero.
//
// The output is deterministic; see the package documentation for the tie-break rule.
func LCS[T comparable](x, y []T, opts ...Option) ([]Match, error) {
	return LCSFunc(x, y, func(a, b T) bool { return a == b }, opts...)
}

// LCSFunc compares the contents of x and y using the provided equality function and returns the
// match runs of a longest common subsequence, in forward order.
//
// eq must be pure: it must report the same result for the same pair of elements on every call.
func LCSFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) ([]Match, error) {
	cfg := config.FromOptions(opts, config.StoreLimit)
	if err := validate(x, y); err != nil {
		return nil, err
	}
	runs, complete := myers.Runs(x, y, eq, cfg.StoreLimit)
	var out []Match
	for _, r := range runs {
		out = append(out, Match{PosX: r.X, PosY: r.Y, Len: r.Len})
	}
	if !complete {
		return out, ErrStoreExhausted
	}
	return out, nil
}

// SES compares the contents of x and y and returns a shortest edit script transforming x into y,
// in forward order.
//
// If x and y are identical, the output has length zero. The sum of the Len fields equals
// len(x) + len(y) - 2·L where L is the length of the longest common subsequence.
//
// The output is deterministic; see the package documentation for the tie-break rule.
func SES[T comparable](x, y []T, opts ...Option) ([]Edit, error) {
	return SESFunc(x, y, func(a, b T) bool { return a == b }, opts...)
}

// SESFunc compares the contents of x and y using the provided equality function and returns a
// shortest edit script transforming x into y, in forward order.
//
// eq must be pure: it must report the same result for the same pair of elements on every call.
func SESFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) ([]Edit, error) {
	cfg := config.FromOptions(opts, config.StoreLimit)
	if err := validate(x, y); err != nil {
		return nil, err
	}
	script, complete := myers.Edits(x, y, eq, cfg.StoreLimit)
	var out []Edit
	for _, e := range script {
		op := Delete
		if e.Insert {
			op = Insert
		}
		out = append(out, Edit{PosX: e.X, PosY: e.Y, Len: e.Len, Op: op})
	}
	if !complete {
		return out, ErrStoreExhausted
	}
	return out, nil
}

// validate checks the input contract before any scratch is allocated.
func validate[T any](x, y []T) error {
	if len(x) == 0 || len(y) == 0 {
		return ErrEmptyInput
	}
	if uint64(len(x)) > myers.MaxInput || uint64(len(y)) > myers.MaxInput {
		return ErrInputTooLarge
	}
	return nil
}
