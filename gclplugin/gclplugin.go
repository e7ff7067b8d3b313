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

package gclplugin

import (
	"fmt"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/capturealloc/analyzer"
)

const linterName = "capturealloc"

func init() { register.Plugin(linterName, New) }

// New decodes and validates the [Settings] and returns the capturealloc linter plugin.
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, fmt.Errorf("%s settings: %w", linterName, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	// golangci-lint filters generated files itself
	opts := append(settings.Options(), analyzer.WithGenerated(true))

	return &plugin{options: opts}, nil
}

// plugin is the capturealloc linter as a [register.LinterPlugin].
type plugin struct {
	options analyzer.Options
}

var _ register.LinterPlugin = (*plugin)(nil)

// GetLoadMode returns the golangci load mode.
func (*plugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

// BuildAnalyzers returns a freshly configured capturealloc analyzer.
func (p *plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{analyzer.New(p.options)}, nil
}
