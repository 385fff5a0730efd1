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

// Package color colors unified diffs for terminal output.
package color

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Scheme holds the styles applied to the lines of a unified diff, keyed by line kind.
type Scheme struct {
	HunkHeader lipgloss.Style // "@@ ... @@" lines
	Delete     lipgloss.Style // lines prefixed with "-"
	Insert     lipgloss.Style // lines prefixed with "+"
	Match      lipgloss.Style // everything else
}

// Default returns the scheme used by the versus command line tool: red deletions, green
// insertions, cyan hunk headers.
func Default() Scheme {
	return Scheme{
		HunkHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Delete:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Insert:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Match:      lipgloss.NewStyle(),
	}
}

// Apply colors a unified diff line by line based on the line prefix. The line structure of the
// input is preserved.
func (c Scheme) Apply(unified string) string {
	if unified == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(unified))
	for line := range strings.Lines(unified) {
		text, nl := strings.CutSuffix(line, "\n")
		var style lipgloss.Style
		switch {
		case strings.HasPrefix(text, "@@"):
			style = c.HunkHeader
		case strings.HasPrefix(text, "-"):
			style = c.Delete
		case strings.HasPrefix(text, "+"):
			style = c.Insert
		default:
			style = c.Match
		}
		sb.WriteString(style.Render(text))
		if nl {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
