// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"strconv"

	"fillmore-labs.com/capturealloc/internal/config"
)

// bitValue is a boolean [flag.Value] toggling one flag of a [config.BitMask].
type bitValue[F config.Flag] struct {
	mask *config.BitMask[F]
	flag F
}

// newBoolValue binds flag of mask to a boolean command line flag.
func newBoolValue[F config.Flag](mask *config.BitMask[F], flag F) bitValue[F] {
	return bitValue[F]{mask: mask, flag: flag}
}

// Set implements [flag.Value]. Besides the [strconv.ParseBool] values, "on" and "off" are accepted.
func (v bitValue[F]) Set(s string) error {
	enabled, err := parseBool(s)
	if err != nil {
		return err
	}

	v.mask.Set(v.flag, enabled)

	return nil
}

// String implements [flag.Value].
func (v bitValue[F]) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v bitValue[F]) Get() any {
	return v.enabled()
}

// IsBoolFlag marks the value as a boolean flag, so it can be given without argument.
func (bitValue[F]) IsBoolFlag() bool { return true }

// enabled is false for the zero value, used by the flag package to print defaults.
func (v bitValue[F]) enabled() bool {
	return v.mask != nil && v.mask.Enabled(v.flag)
}

func parseBool(s string) (bool, error) {
	switch s {
	case "on", "On", "ON":
		return true, nil

	case "off", "Off", "OFF":
		return false, nil
	}

	return strconv.ParseBool(s)
}
