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
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mwrd.io/versus"
	"mwrd.io/versus/textdiff"
	"mwrd.io/versus/textdiff/color"
)

var (
	contextLines int
	colorMode    string
)

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Print a unified line diff of two files",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().IntVarP(&contextLines, "context", "C", 3,
		"number of matching lines shown around each change")
	diffCmd.Flags().StringVar(&colorMode, "color", "auto",
		"colorize the output: auto, always, never")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	x, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	y, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	opts := append(options(), versus.Context(contextLines))
	out, err := textdiff.Unified(string(x), string(y), opts...)
	if err != nil && !errors.Is(err, versus.ErrStoreExhausted) {
		return err
	}
	if useColor() {
		out = color.Default().Apply(out)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	if errors.Is(err, versus.ErrStoreExhausted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "versus: store limit reached, diff is valid but not minimal")
	}
	return nil
}

func useColor() bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
