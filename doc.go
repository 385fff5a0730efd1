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

// Package versus computes the longest common subsequence (LCS) and the shortest edit script
// (SES) between two slices.
//
// The main functions are [LCS], which returns the match runs shared by both inputs, and [SES],
// which returns the insertions and deletions that transform one input into the other. Both have
// Func variants that take an equality function for element types that are not comparable or that
// need a custom notion of equality.
//
// The implementation is Myers' greedy O(ND) edit-graph search with the explored diagonals
// restricted to Ukkonen's k-band and the path reconstruction state compressed into chained
// k-candidates; see the internal/myers package documentation for details. Time complexity is
// O(ND) with N the sum of the input lengths and D the number of differences; working memory is
// O(N) plus one 16-byte node per match run found during the search.
//
// The output is deterministic: identical inputs produce identical results on every call and on
// every platform. Among the equally short scripts, one is pinned by a fixed predecessor rule:
// a step through an insertion is taken exactly when it reaches at least as far as the step
// through the deletion.
//
// The number of recorded match runs can be bounded with [StoreLimit]; when the bound is hit, the
// functions return a valid result for the matched prefix together with [ErrStoreExhausted].
//
// Note: for a line-by-line diff of text, see [mwrd.io/versus/textdiff].
package versus
