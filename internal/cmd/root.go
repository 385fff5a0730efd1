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

// Package cmd provides the CLI commands for the versus tool.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mwrd.io/versus"
)

var rootCmd = &cobra.Command{
	Use:   "versus",
	Short: "Compare two files line by line",
	Long: `versus compares two files line by line.

It can print a unified diff (diff), the line runs the files have in
common (lcs), or the raw shortest edit script records (ses).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	storeLimit int
)

func init() {
	rootCmd.PersistentFlags().IntVar(&storeLimit, "store-limit", 0,
		"bound the number of recorded match runs, 0 means unlimited")
}

// Execute runs the root command and returns an exit code. The caller (main) should call os.Exit
// with this code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "versus: %v\n", err)
		return 1
	}
	return 0
}

// options translates the global flags into comparison options.
func options() []versus.Option {
	var opts []versus.Option
	if storeLimit > 0 {
		opts = append(opts, versus.StoreLimit(storeLimit))
	}
	return opts
}

// readLines reads a file and splits it into lines, without the line terminators. A trailing
// newline does not produce an extra empty line.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.Split(s, "\n"), nil
}
