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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// versus.Option.
package config

import "math"

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks returned
	// by the textdiff package.
	Context int

	// StoreLimit bounds the number of match runs the engine records. When the limit is
	// reached, the search stops and the result covers the matched prefix only.
	StoreLimit uint32
}

// Default is the default configuration.
var Default = Config{
	Context:    3,
	StoreLimit: math.MaxUint32,
}

// Flag identifies a single config entry. It is used to detect options being passed to entry
// points that don't support them.
type Flag int

const (
	Context Flag = 1 << iota
	StoreLimit
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "versus.Context"
	case StoreLimit:
		return "versus.StoreLimit"
	default:
		panic("never reached")
	}
}
