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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"mwrd.io/versus"
	"mwrd.io/versus/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "context",
			opts: []config.Option{
				versus.Context(5),
			},
			want: config.Config{
				Context:    5,
				StoreLimit: config.Default.StoreLimit,
			},
		},
		{
			name: "store-limit",
			opts: []config.Option{
				versus.StoreLimit(1000),
			},
			want: config.Config{
				Context:    config.Default.Context,
				StoreLimit: 1000,
			},
		},
		{
			name: "store-limit-context",
			opts: []config.Option{
				versus.StoreLimit(1000),
				versus.Context(5),
			},
			want: config.Config{
				Context:    5,
				StoreLimit: 1000,
			},
		},
		{
			name: "context-override",
			opts: []config.Option{
				versus.Context(5),
				versus.StoreLimit(1000),
				versus.Context(1),
			},
			want: config.Config{
				Context:    1,
				StoreLimit: 1000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Context|config.StoreLimit)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) results are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsRejectsDisallowed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for a disallowed option")
		}
	}()
	config.FromOptions([]config.Option{versus.Context(5)}, config.StoreLimit)
}
