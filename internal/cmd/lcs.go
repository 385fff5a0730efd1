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

var lcsCmd = &cobra.Command{
	Use:   "lcs <old> <new>",
	Short: "Print the line runs two files have in common",
	Long: `Print the line runs two files have in common, one run per row as

	<start in old> <start in new> <number of lines>

with 0-based line positions.`,
	Args: cobra.ExactArgs(2),
	RunE: runLCS,
}

func init() {
	rootCmd.AddCommand(lcsCmd)
}

func runLCS(cmd *cobra.Command, args []string) error {
	x, err := readLines(args[0])
	if err != nil {
		return err
	}
	y, err := readLines(args[1])
	if err != nil {
		return err
	}

	matches, err := versus.LCS(x, y, options()...)
	if err != nil && !errors.Is(err, versus.ErrStoreExhausted) {
		return err
	}
	for _, m := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d\n", m.PosX, m.PosY, m.Len)
	}
	if errors.Is(err, versus.ErrStoreExhausted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "versus: store limit reached, result covers a prefix only")
	}
	return nil
}
