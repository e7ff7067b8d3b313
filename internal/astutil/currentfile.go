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

// Package astutil provides per-file information for the capturealloc analyzer.
package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"
)

// linterName is the name matched in nolint directives.
const linterName = "capturealloc"

// CurrentFile holds the analyzer relevant facts of a source file.
//
// It is read-only after construction and safe for concurrent use.
type CurrentFile struct {
	handle    *token.File
	generated bool
	nolint    map[int]struct{} // lines carrying a nolint directive
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
//
// The comments of the file are scanned once for line directives.
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	c := CurrentFile{handle: handle, generated: ast.IsGenerated(file)}

	for _, group := range file.Comments {
		for _, comment := range group.List {
			if !CommentHasNoLint(comment) {
				continue
			}

			if c.nolint == nil {
				c.nolint = make(map[int]struct{})
			}

			c.nolint[c.line(comment.Slash)] = struct{}{}
		}
	}

	return c
}

// Valid returns true if the [CurrentFile] was created from a file with position information.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Name returns the file name.
func (c CurrentFile) Name() string {
	return c.handle.Name()
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment reports whether the line of pos carries a //nolint:capturealloc comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if len(c.nolint) == 0 {
		return false
	}

	_, ok := c.nolint[c.line(pos)]

	return ok
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint reports whether the comment is a nolint directive naming capturealloc or all linters.
func CommentHasNoLint(comment *ast.Comment) bool {
	m := nolintPattern.FindStringSubmatch(comment.Text)
	if m == nil {
		return false
	}

	for linter := range strings.SplitSeq(m[1], ",") {
		switch strings.ToLower(strings.TrimSpace(linter)) {
		case linterName, "all":
			return true
		}
	}

	return false
}

// DocHasNoLint reports whether the last line of a doc comment is a nolint directive.
func DocHasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && len(doc.List) > 0 && CommentHasNoLint(doc.List[len(doc.List)-1])
}
