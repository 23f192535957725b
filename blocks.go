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

// codeBlockIndentLimit is the column width of an indent
// required to start an indented code block.
const codeBlockIndentLimit = 4

// startBlankRun collects consecutive blank lines into one block.
// Blank lines match no other detector, so without this block the
// produced sequence could not partition the input.
func startBlankRun(ctx *Context, ln Line) (Start, bool) {
	if !ln.IsBlank() {
		return Start{}, false
	}
	return Start{Record: blankRecord(ln), Feed: feedBlankRun}, true
}

func feedBlankRun(ctx *Context, ln Line) Feed {
	if !ln.IsBlank() {
		return Feed{}
	}
	return Feed{Open: &Start{Record: blankRecord(ln), Feed: feedBlankRun}}
}

func blankRecord(ln Line) Record {
	return Record{Line: ln, Build: buildBlankRun}
}

func buildBlankRun(lines []Line) *Block {
	return &Block{kind: BlankKind, lines: lines}
}

// startHeading parses the line as an [ATX heading]:
// up to three columns of indentation, one to six '#', then whitespace.
// Headings are always single-line.
//
// [ATX heading]: https://spec.commonmark.org/0.30/#atx-headings
func startHeading(ctx *Context, ln Line) (Start, bool) {
	if ln.Indent() >= codeBlockIndentLimit {
		return Start{}, false
	}
	t := ln.TrimIndent().Text()
	level := 0
	for level < len(t) && t[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return Start{}, false
	}
	if level >= len(t) || (t[level] != ' ' && t[level] != '\t') {
		return Start{}, false
	}
	text := strings.Trim(t[level:], " \t")
	build := func(lines []Line) *Block {
		return &Block{kind: HeadingKind, lines: lines, level: level, text: text}
	}
	return Start{Record: Record{Line: ln, Build: build}}, true
}

// fenceParser tracks one open [fenced code block].
//
// [fenced code block]: https://spec.commonmark.org/0.30/#fenced-code-blocks
type fenceParser struct {
	char   byte
	length int
	indent int
	info   string
	closed bool
}

// startFencedCode parses the line as an opening code fence:
// up to three columns of indentation, then a run of at least three
// backticks or tildes. A backtick fence's info string may not contain
// another backtick on the opening line.
func startFencedCode(ctx *Context, ln Line) (Start, bool) {
	indent := ln.Indent()
	if indent >= codeBlockIndentLimit {
		return Start{}, false
	}
	t := ln.TrimIndent().Text()
	if len(t) == 0 || (t[0] != '`' && t[0] != '~') {
		return Start{}, false
	}
	char := t[0]
	n := 0
	for n < len(t) && t[n] == char {
		n++
	}
	if n < 3 {
		return Start{}, false
	}
	rest := t[n:]
	if char == '`' && strings.IndexByte(rest, '`') >= 0 {
		return Start{}, false
	}
	f := &fenceParser{
		char:   char,
		length: n,
		indent: indent,
		info:   strings.Trim(rest, " \t"),
	}
	return Start{Record: Record{Line: ln, Build: f.build}, Feed: f.feed}, true
}

// feed consumes every line verbatim until a closing fence.
// An unclosed fence runs to the end of input.
func (f *fenceParser) feed(ctx *Context, ln Line) Feed {
	rec := Record{Line: ln, Build: f.build}
	if f.isClose(ln) {
		f.closed = true
		return Feed{Open: &Start{Record: rec}}
	}
	return Feed{Open: &Start{Record: rec, Feed: f.feed}}
}

// isClose reports whether the line is a closing fence: up to three
// columns of indentation, a run of the opening character at least as
// long as the opening run, and nothing but whitespace after.
func (f *fenceParser) isClose(ln Line) bool {
	if ln.Indent() >= codeBlockIndentLimit {
		return false
	}
	t := ln.TrimIndent().Text()
	n := 0
	for n < len(t) && t[n] == f.char {
		n++
	}
	return n >= f.length && strings.Trim(t[n:], " \t") == ""
}

func (f *fenceParser) build(lines []Line) *Block {
	body := lines[1:]
	if f.closed && len(body) > 0 {
		body = body[:len(body)-1]
	}
	rows := make([]string, len(body))
	for i, ln := range body {
		rows[i] = ln.CutIndent(f.indent).Text()
	}
	return &Block{
		kind:  FencedCodeBlockKind,
		lines: lines,
		fence: f.char,
		info:  f.info,
		text:  strings.Join(rows, "\n"),
	}
}

// startIndentedCode parses the line as the start of an [indented code
// block]: non-blank with at least four columns of indentation.
// The dispatcher keeps this detector out of the paragraph-interruption
// list; an indented line inside an open paragraph is a lazy
// continuation, never code.
//
// [indented code block]: https://spec.commonmark.org/0.30/#indented-code-blocks
func startIndentedCode(ctx *Context, ln Line) (Start, bool) {
	if ln.IsBlank() || ln.Indent() < codeBlockIndentLimit {
		return Start{}, false
	}
	return Start{Record: indentedCodeRecord(ln), Feed: feedIndentedCode}, true
}

// feedIndentedCode consumes blank lines and lines indented at least
// four columns. The first non-blank line under four columns is not
// consumed; the block ended on the previous line.
func feedIndentedCode(ctx *Context, ln Line) Feed {
	if !ln.IsBlank() && ln.Indent() < codeBlockIndentLimit {
		return Feed{}
	}
	return Feed{Open: &Start{Record: indentedCodeRecord(ln), Feed: feedIndentedCode}}
}

func indentedCodeRecord(ln Line) Record {
	return Record{Line: ln, Build: buildIndentedCode}
}

func buildIndentedCode(lines []Line) *Block {
	// Trailing blank rows are attributed to the block but excluded
	// from its text.
	end := len(lines)
	for end > 0 && lines[end-1].IsBlank() {
		end--
	}
	rows := make([]string, end)
	for i, ln := range lines[:end] {
		rows[i] = ln.CutIndent(codeBlockIndentLimit).Text()
	}
	return &Block{kind: IndentedCodeBlockKind, lines: lines, text: strings.Join(rows, "\n")}
}
