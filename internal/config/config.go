// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

// Kind is the syntactic flavor of a function literal, derived from its position.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// GoStmt is a function literal started as a goroutine: go func() { ... }().
	GoStmt Kind = 1 << iota // go

	// Defer is a deferred function literal: defer func() { ... }().
	Defer // defer

	// CallArg is a function literal passed as a call argument: slices.SortFunc(s, func(a, b T) int { ... }).
	CallArg // arg

	// Assign is a function literal bound to a variable: f := func() { ... }.
	Assign // assign

	// Other is a function literal in any other position, like a return value or a composite literal element.
	Other // other
)

// AllKinds contains every function literal flavor.
const AllKinds = GoStmt | Defer | CallArg | Assign | Other

// Kinds is the set of function literal flavors requested for analysis.
type Kinds = BitMask[Kind]

// Behavior is the set of behavioral options of an analyzer run.
type Behavior = BitMask[Config]

// Config represents configuration options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// DefaultKinds returns the default set of analyzed function literal flavors.
func DefaultKinds() Kinds {
	return NewBitMask(AllKinds)
}

// DefaultBehavior returns the default behavior.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}

// ErrUnknownKind is returned when parsing an unknown function literal flavor.
var ErrUnknownKind = errors.New("unknown function literal flavor")

// ParseKind returns the function literal flavor with the given name.
func ParseKind(name string) (Kind, error) {
	for k := range NewBitMask(AllKinds).All() {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownKind, name)
}
