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

import "iter"

// Flag is the constraint of flag types stored in a [BitMask].
type Flag interface {
	~uint8 | ~uint16 | ~uint32
}

// BitMask is a set of single bit flags. The zero value is the empty set.
type BitMask[T Flag] struct {
	value T
}

// NewBitMask creates a [BitMask] with the given flags enabled.
func NewBitMask[T Flag](flags ...T) BitMask[T] {
	var value T
	for _, flag := range flags {
		value |= flag
	}

	return BitMask[T]{value: value}
}

// Set enables or disables flag.
func (b *BitMask[T]) Set(flag T, enabled bool) {
	if enabled {
		b.value |= flag
	} else {
		b.value &^= flag
	}
}

// Enable adds flag to the set.
func (b *BitMask[T]) Enable(flag T) { b.Set(flag, true) }

// Disable removes flag from the set.
func (b *BitMask[T]) Disable(flag T) { b.Set(flag, false) }

// Enabled reports whether any bit of flag is set.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.value&flag != 0
}

// Empty reports whether no flag is set.
func (b BitMask[T]) Empty() bool {
	return b.value == 0
}

// Value returns the raw flags.
func (b BitMask[T]) Value() T {
	return b.value
}

// All yields the single flags of the set, lowest bit first.
func (b BitMask[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := b.value; v != 0; v &= v - 1 {
			if !yield(v & -v) {
				return
			}
		}
	}
}
