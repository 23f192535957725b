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

// dispatcher holds the ordered detector lists, composed once per
// document.
//
// interrupting lists the detectors allowed to end an in-progress
// paragraph. full appends indented code: an indented line inside an
// open paragraph is a lazy continuation of the paragraph, never a new
// code block, so indented code gets no interruption rights. The
// blank-run detector heads the full list; blank lines match nothing
// else.
type dispatcher struct {
	interrupting []Detector
	full         []Detector
}

func newDispatcher(ctx *Context) *dispatcher {
	d := new(dispatcher)
	d.interrupting = []Detector{d.blockQuote, startHeading, d.listItem}
	if ctx != nil && ctx.Extension != nil {
		d.interrupting = append(d.interrupting, ctx.Extension)
	}
	d.interrupting = append(d.interrupting, startFencedCode, startHTMLBlock)
	d.full = append([]Detector{startBlankRun}, d.interrupting...)
	d.full = append(d.full, startIndentedCode)
	return d
}

// dispatch opens a block for a fresh line: the first success in the
// full detector list wins, and the default paragraph takes whatever
// remains.
func (d *dispatcher) dispatch(ctx *Context, ln Line) Start {
	for _, det := range d.full {
		if s, ok := det(ctx, ln); ok {
			return s
		}
	}
	return d.paragraph(ctx, ln)
}

// tryInterrupt dispatches a line that follows an open paragraph,
// using only the interruption-capable detectors.
func (d *dispatcher) tryInterrupt(ctx *Context, ln Line) (Start, bool) {
	for _, det := range d.interrupting {
		if s, ok := det(ctx, ln); ok {
			return s, true
		}
	}
	return Start{}, false
}

// paragraph opens the default paragraph block on a non-blank line.
// A line ending in a hard break completes the paragraph immediately;
// the nil Next sends the following line through the full list, so
// even an indented code block may start there.
func (d *dispatcher) paragraph(ctx *Context, ln Line) Start {
	rec := Record{Line: ln, Build: buildParagraph, IsParagraph: true}
	if hasHardBreak(ln) {
		return Start{Record: rec}
	}
	return Start{Record: rec, Feed: d.paragraphFeed}
}

// paragraphFeed decides the fate of a line following an open
// paragraph. A blank line closes the paragraph and is left for the
// caller. A match in the interruption list closes the paragraph
// exactly at the previous line and becomes the new block. Otherwise
// the line is accepted unmodified, completing the paragraph if it
// carries a hard break.
func (d *dispatcher) paragraphFeed(ctx *Context, ln Line) Feed {
	if ln.IsBlank() {
		return Feed{}
	}
	if s, ok := d.tryInterrupt(ctx, ln); ok {
		return Feed{Restart: &s}
	}
	rec := Record{Line: ln, Build: buildParagraph, IsParagraph: true}
	if hasHardBreak(ln) {
		return Feed{Open: &Start{Record: rec}}
	}
	return Feed{Open: &Start{Record: rec, Feed: d.paragraphFeed}}
}

func buildParagraph(lines []Line) *Block {
	rows := make([]string, len(lines))
	for i, ln := range lines {
		rows[i] = ln.TrimIndent().Text()
	}
	return &Block{kind: ParagraphKind, lines: lines, text: strings.Join(rows, "\n")}
}

// hasHardBreak reports whether the line ends in an explicit line
// break: a trailing backslash, two or more trailing spaces, or a
// trailing <br> tag.
func hasHardBreak(ln Line) bool {
	t := ln.Text()
	if strings.HasSuffix(t, "  ") || isEndEscaped(t) {
		return true
	}
	t = strings.TrimRight(t, " \t")
	for _, tag := range []string{"<br>", "<br/>", "<br />"} {
		if len(t) >= len(tag) && hasCaseInsensitivePrefix(t[len(t)-len(tag):], tag) {
			return true
		}
	}
	return false
}

// isEndEscaped reports whether s ends with an odd number of
// backslashes.
func isEndEscaped(s string) bool {
	n := 0
	for ; n < len(s); n++ {
		if s[len(s)-n-1] != '\\' {
			break
		}
	}
	return n%2 == 1
}
