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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles writes the canonical test pair to a temp directory and returns the paths.
func writeFiles(t *testing.T) (xpath, ypath string) {
	t.Helper()
	dir := t.TempDir()
	xpath = filepath.Join(dir, "old.txt")
	ypath = filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(xpath, []byte("A\nB\nC\nA\nB\nB\nA\n"), 0o644))
	require.NoError(t, os.WriteFile(ypath, []byte("C\nB\nA\nB\nA\nC\n"), 0o644))
	return xpath, ypath
}

// run executes the root command with the given arguments and returns stdout and stderr.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errb)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errb.String(), err
}

func TestLCSCommand(t *testing.T) {
	xpath, ypath := writeFiles(t)
	stdout, _, err := run(t, "lcs", xpath, ypath)
	require.NoError(t, err)
	assert.Equal(t, "2 0 1\n3 2 2\n6 4 1\n", stdout)
}

func TestSESCommand(t *testing.T) {
	xpath, ypath := writeFiles(t)
	stdout, _, err := run(t, "ses", xpath, ypath)
	require.NoError(t, err)
	assert.Equal(t, "- 0 0 2\n+ 3 1 1\n- 5 4 1\n+ 7 5 1\n", stdout)
}

func TestSESCommandStoreLimit(t *testing.T) {
	xpath, ypath := writeFiles(t)
	stdout, stderr, err := run(t, "ses", xpath, ypath, "--store-limit", "1")
	require.NoError(t, err)
	assert.NotEmpty(t, stdout)
	assert.Contains(t, stderr, "store limit")
	storeLimit = 0 // reset the persistent flag for other tests
}

func TestDiffCommand(t *testing.T) {
	xpath, ypath := writeFiles(t)
	stdout, _, err := run(t, "diff", "--color", "never", xpath, ypath)
	require.NoError(t, err)
	want := "@@ -1,7 +1,6 @@\n-A\n-B\n C\n+B\n A\n B\n-B\n A\n+C\n"
	assert.Equal(t, want, stdout)
}

func TestDiffCommandStoreLimit(t *testing.T) {
	xpath, ypath := writeFiles(t)
	stdout, stderr, err := run(t, "diff", "--color", "never", xpath, ypath, "--store-limit", "1")
	require.NoError(t, err)
	assert.NotEmpty(t, stdout)
	assert.Contains(t, stderr, "store limit")
	storeLimit = 0 // reset the persistent flag for other tests
}

func TestDiffCommandIdentical(t *testing.T) {
	xpath, _ := writeFiles(t)
	stdout, _, err := run(t, "diff", "--color", "never", xpath, xpath)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestDiffCommandMissingFile(t *testing.T) {
	xpath, _ := writeFiles(t)
	_, _, err := run(t, "diff", xpath, filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
