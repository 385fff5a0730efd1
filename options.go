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

package versus

import (
	"math"

	"mwrd.io/versus/internal/config"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of matching lines to include as a prefix and postfix for hunks
// returned by [mwrd.io/versus/textdiff]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// StoreLimit bounds the number of match runs the engine records during the search. The default
// is 2³²-1, the largest addressable store.
//
// When the limit is reached the search stops early and the comparison functions return a valid
// result for the matched prefix together with [ErrStoreExhausted]. Each recorded run occupies 16
// bytes; the limit caps the memory spent on pathological inputs with very many short match runs.
func StoreLimit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.StoreLimit = uint32(min(int64(max(1, n)), math.MaxUint32))
		return config.StoreLimit
	}
}
