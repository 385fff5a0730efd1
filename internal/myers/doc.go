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

// Package myers contains an implementation of Myers' greedy O(ND) algorithm, with the explored
// diagonals restricted to Ukkonen's k-band and with the path reconstruction state compressed
// into chained k-candidates in the style of Hunt.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to y.
// For simplicity, let's say that T is the []byte representation of string and the inputs are x =
// "ABCABBA" and y = "CBABAC". Then we can represent all possible edits from x to y with the graph:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// Every vertex corresponds to a state. The top left (0,0) corresponds to x and the bottom right
// (7,6) to y. A step to the right deletes an element of x, a step down inserts an element of y,
// and when both elements are identical a diagonal edge matches them. An optimal diff is a
// minimum-cost path from (0,0) to (n,m) where horizontal and vertical edges cost 1 and diagonal
// edges cost 0. A maximal run of consecutive diagonal edges is called a snake.
//
// We use x and y for the horizontal and vertical coordinates and k = x - y for diagonals; the
// k = 0 diagonal starts in (0,0).
//
// Let a D-path be a path with exactly D non-diagonal edges. A D-path must end on a diagonal
// k in {-D, -D+2, ..., D-2, D}, and a furthest reaching D-path on diagonal k decomposes into a
// furthest reaching (D-1)-path on diagonal k-1 followed by a horizontal edge, or a furthest
// reaching (D-1)-path on diagonal k+1 followed by a vertical edge, in both cases followed by the
// longest possible snake. That is the greedy step: per edit distance d, per diagonal k, extend
// the better of the two neighbouring endpoints. The endpoints live in the v-array, v[k] being the
// largest x reached on diagonal k so far (y is implied by y = x - k).
//
// # Ukkonen's k-band
//
// Blindly iterating k from -d to d explores diagonals that cannot be part of any path to (n,m):
// below diagonal -m every vertex is outside the grid and above diagonal n likewise, and once
// d exceeds one of the input lengths the corresponding band edge contracts again. Restricting
// the iteration to
//
//	k ∈ [-(d - 2·max(0, d-m)), d - 2·max(0, d-n)]
//
// keeps exactly the diagonals from which the end cell is still reachable within the remaining
// budget. This is the diagonal transition band from Ukkonen's formulation.
//
// # Hunt's chained k-candidates
//
// Recovering the path from the v-arrays alone requires a snapshot of v per d, i.e. O(D²) space.
// Instead, every snake is recorded once in a dense candidate store: a node holds the snake's
// endpoint (x, y), its length z, and a relative back-link to the node of the previous snake on
// the same path. A second vector w[k], parallel to v[k], tracks the node of the most recent
// snake whose path tail lies on diagonal k. When the search steps from diagonal i into k, k
// inherits w[i], so a snake recorded on k chains back to the snake the path actually came
// through. The store grows by one node per snake found during the search, including snakes on
// paths that are later abandoned, instead of one v snapshot per d. Node 0 is reserved; a back-link
// that lands there terminates the walk.
//
// Backtracking is then a single walk along the back-links from the node where the search
// terminated, yielding the snakes of one optimal path end-to-start.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
//
// Ukkonen, E. Algorithms for approximate string matching. Information and Control, Volume 64,
// Issues 1-3, 100-118 (1985). https://doi.org/10.1016/S0019-9958(85)80046-2
//
// Hunt, J.W., McIlroy, M.D. An algorithm for differential file comparison. Bell Laboratories
// Computing Science Technical Report 41 (1976).
package myers
