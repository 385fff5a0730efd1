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

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mwrd.io/versus"
)

var sesCmd = &cobra.Command{
	Use:   "ses <old> <new>",
	Short: "Print the shortest edit script between two files",
	Long: `Print the shortest edit script between two files, one edit per row as

	<op> <position in old> <position in new> <number of lines>

with op "+" for an insertion, "-" for a deletion and 0-based line positions.
A "-" row directly followed by a "+" row at the same position is a
substitution.`,
	Args: cobra.ExactArgs(2),
	RunE: runSES,
}

func init() {
	rootCmd.AddCommand(sesCmd)
}

func runSES(cmd *cobra.Command, args []string) error {
	x, err := readLines(args[0])
	if err != nil {
		return err
	}
	y, err := readLines(args[1])
	if err != nil {
		return err
	}

	script, err := versus.SES(x, y, options()...)
	if err != nil && !errors.Is(err, versus.ErrStoreExhausted) {
		return err
	}
	for _, e := range script {
		op := "-"
		if e.Op == versus.Insert {
			op = "+"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d %d %d\n", op, e.PosX, e.PosY, e.Len)
	}
	if errors.Is(err, versus.ErrStoreExhausted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "versus: store limit reached, script is valid but not minimal")
	}
	return nil
}
