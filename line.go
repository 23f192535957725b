// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import "strings"

// tabStopSize is the multiple of columns that a [tab] advances to.
//
// [tab]: https://spec.commonmark.org/0.30/#tabs
const tabStopSize = 4

// A Line is an immutable snapshot of one physical line of input,
// without its line terminator.
// Transformations return new Line values; a Line is never mutated.
type Line struct {
	text   string
	indent int
	blank  bool
}

// MakeLine computes the derived facts for one line of text.
// text must not contain a line terminator.
func MakeLine(text string) Line {
	ln := Line{text: text, blank: true}
	col := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ':
			col++
		case '\t':
			col += tabStopSize - col%tabStopSize
		default:
			ln.blank = false
			ln.indent = col
			return ln
		}
	}
	ln.indent = col
	return ln
}

// Text returns the raw content of the line.
func (ln Line) Text() string { return ln.text }

// IsBlank reports whether the line contains only whitespace.
func (ln Line) IsBlank() bool { return ln.blank }

// Indent returns the width in columns of the line's leading whitespace.
func (ln Line) Indent() int { return ln.indent }

// TrimIndent returns the line with all leading whitespace removed.
func (ln Line) TrimIndent() Line {
	return MakeLine(strings.TrimLeft(ln.text, " \t"))
}

// CutIndent returns the line with up to n columns of leading whitespace
// removed. A tab that spans the cut point is materialized as spaces for
// its remainder. Cutting stops early at the first non-whitespace byte.
func (ln Line) CutIndent(n int) Line {
	i, col := 0, 0
	for i < len(ln.text) && col < n {
		switch ln.text[i] {
		case ' ':
			i++
			col++
		case '\t':
			w := tabStopSize - col%tabStopSize
			if col+w > n {
				return MakeLine(strings.Repeat(" ", col+w-n) + ln.text[i+1:])
			}
			i++
			col += w
		default:
			return MakeLine(ln.text[i:])
		}
	}
	return MakeLine(ln.text[i:])
}

// BlankIndent returns the line with its first n columns replaced by
// spaces of the same total width. It is used to blank out a list marker
// so that indentation-sensitive detectors measure the remainder from
// column zero.
func (ln Line) BlankIndent(n int) Line {
	i, col := 0, 0
	for i < len(ln.text) && col < n {
		if ln.text[i] == '\t' {
			col += tabStopSize - col%tabStopSize
		} else {
			col++
		}
		i++
	}
	return MakeLine(strings.Repeat(" ", col) + ln.text[i:])
}
