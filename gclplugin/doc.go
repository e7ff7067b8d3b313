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

/*
Package gclplugin provides golangci-lint plugin integration for the [capturealloc] analyzer.

# Usage

Add the plugin to `.custom-gcl.yaml`:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: fillmore-labs.com/capturealloc
	    import: fillmore-labs.com/capturealloc/gclplugin
	    version: v0.1.0

Build the custom binary with `golangci-lint custom`, then enable and configure
the linter in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  enable:
	    - capturealloc
	  settings:
	    custom:
	      capturealloc:
	        type: module
	        description: "capturealloc reports hidden closure capture allocations."
	        original-url: "https://fillmore-labs.com/capturealloc"
	        settings:
	          defer: false
	          concurrency: 4

Generated files are handled by golangci-lint and always passed to the analyzer.

[capturealloc]: https://pkg.go.dev/fillmore-labs.com/capturealloc/analyzer
*/
package gclplugin
