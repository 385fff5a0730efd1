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

package versus_test

import (
	"fmt"
	"strings"

	"mwrd.io/versus"
)

// Find the parts two strings have in common, character by character.
func ExampleLCS() {
	x := strings.Split("ABCABBA", "")
	y := strings.Split("CBABAC", "")
	matches, err := versus.LCS(x, y)
	if err != nil {
		panic(err)
	}
	for _, m := range matches {
		fmt.Printf("x[%d:%d] == y[%d:%d]: %s\n",
			m.PosX, m.PosX+m.Len, m.PosY, m.PosY+m.Len,
			strings.Join(x[m.PosX:m.PosX+m.Len], ""))
	}
	// Output:
	// x[2:3] == y[0:1]: C
	// x[3:5] == y[2:4]: AB
	// x[6:7] == y[4:5]: A
}

// Compute the edits that turn one word into another. A deletion directly followed by an
// insertion at the same position is a substitution.
func ExampleSES() {
	x := strings.Split("kitten", "")
	y := strings.Split("sitting", "")
	script, err := versus.SES(x, y)
	if err != nil {
		panic(err)
	}
	for _, e := range script {
		switch e.Op {
		case versus.Delete:
			fmt.Printf("delete %s at %d\n", strings.Join(x[e.PosX:e.PosX+e.Len], ""), e.PosX)
		case versus.Insert:
			fmt.Printf("insert %s at %d\n", strings.Join(y[e.PosY:e.PosY+e.Len], ""), e.PosX)
		}
	}
	// Output:
	// delete k at 0
	// insert s at 0
	// delete e at 4
	// insert i at 4
	// insert g at 6
}
