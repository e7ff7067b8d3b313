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

package main

import (
	"github.com/charmbracelet/lipgloss"

	"fillmore-labs.com/capturealloc/internal/report"
)

var (
	warningColor = lipgloss.Color("#FF8800") // Orange
	goodColor    = lipgloss.Color("#228B22") // Forest green
	infoColor    = lipgloss.Color("#4682B4") // Steel blue
	textColor    = lipgloss.Color("#CCCCCC") // Light gray
	mutedColor   = lipgloss.Color("#888888") // Medium gray
)

// styles are the output styles bound to a renderer.
type styles struct {
	title    lipgloss.Style
	position lipgloss.Style
	rule     lipgloss.Style
	message  lipgloss.Style
	muted    lipgloss.Style
	good     lipgloss.Style
	info     lipgloss.Style
	warning  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(infoColor).
			Bold(true).
			Padding(0, 1),
		position: r.NewStyle().Foreground(mutedColor),
		rule:     r.NewStyle().Bold(true),
		message:  r.NewStyle().Foreground(textColor),
		muted:    r.NewStyle().Foreground(mutedColor),
		good:     r.NewStyle().Foreground(goodColor).Bold(true),
		info:     r.NewStyle().Foreground(infoColor),
		warning:  r.NewStyle().Foreground(warningColor).Bold(true),
	}
}

func (s styles) severity(sev report.Severity) lipgloss.Style {
	if sev == report.Warning {
		return s.warning
	}

	return s.info
}
