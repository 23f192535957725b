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

import "strconv"

// A memberFunc decides whether a line still belongs to a container.
// On membership it returns the line with the container's own marker or
// indentation stripped.
type memberFunc func(ln Line) (Line, bool)

// A wrapFunc folds a container's raw lines and completed inner blocks
// into the finished container block.
type wrapFunc func(lines []Line, children []*Block) *Block

// containerParser runs the nesting state for one container block
// (and, with an always-true member, for the document's top level).
// Inner blocks are opened through the standard dispatcher on
// prefix-stripped lines; an unmarked line may still continue an open
// inner paragraph (lazy continuation).
type containerParser struct {
	d      *dispatcher
	member memberFunc
	wrap   wrapFunc

	open     *innerBlock
	pending  Detector
	children []*Block
}

// innerBlock is the currently open block directly inside a container:
// its line-feed function, the builder and lines collected so far, and
// whether it is the lazily continuable paragraph kind.
type innerBlock struct {
	feed        Feeder
	build       BuildFunc
	lines       []Line
	isParagraph bool
}

// openContainer opens a container block. raw is the unmodified first
// line; first must already have the container's prefix rewritten and
// stripped.
func (d *dispatcher) openContainer(ctx *Context, raw, first Line, member memberFunc, wrap wrapFunc) Start {
	c := &containerParser{d: d, member: member, wrap: wrap}
	c.begin(d.dispatch(ctx, first))
	return Start{Record: Record{Line: raw, Build: c.build}, Feed: c.feed}
}

func (c *containerParser) feed(ctx *Context, ln Line) Feed {
	inner, ok := c.member(ln)
	if ok {
		switch {
		case c.open != nil:
			f := c.open.feed(ctx, inner)
			if f.Open != nil {
				c.absorb(*f.Open)
			} else {
				c.finishOpen()
				if f.Restart != nil {
					c.begin(*f.Restart)
				} else {
					c.begin(c.d.dispatch(ctx, inner))
				}
			}
		case c.pending != nil:
			det := c.pending
			c.pending = nil
			if s, ok := det(ctx, inner); ok {
				c.begin(s)
			} else {
				c.begin(c.d.dispatch(ctx, inner))
			}
		default:
			c.begin(c.d.dispatch(ctx, inner))
		}
		return Feed{Open: &Start{Record: Record{Line: ln, Build: c.build}, Feed: c.feed}}
	}

	// Unmarked line. An open paragraph may continue lazily; it decides
	// for itself, on the unmodified line, whether anything interrupts.
	if c.open != nil && c.open.isParagraph {
		f := c.open.feed(ctx, ln)
		if f.Open != nil {
			c.absorb(*f.Open)
			return Feed{Open: &Start{Record: Record{Line: ln, Build: c.build}, Feed: c.feed}}
		}
		// The paragraph rejected the line, so the container ends too.
		// Any outcome the paragraph precomputed was produced against
		// the unmodified line and stands as a new top-level block.
		return Feed{Restart: f.Restart}
	}

	// No lazily continuable block open: the container has ended and
	// the line must be dispatched fresh by the caller.
	return Feed{}
}

// begin records the outcome of opening an inner block.
func (c *containerParser) begin(s Start) {
	if s.Feed == nil {
		c.children = append(c.children, s.Record.Build([]Line{s.Record.Line}))
		c.pending = s.Next
		return
	}
	c.open = &innerBlock{
		feed:        s.Feed,
		build:       s.Record.Build,
		lines:       []Line{s.Record.Line},
		isParagraph: s.Record.IsParagraph,
	}
}

// absorb merges a still-open outcome into the open inner block.
func (c *containerParser) absorb(s Start) {
	ib := c.open
	ib.lines = append(ib.lines, s.Record.Line)
	ib.build = s.Record.Build
	ib.isParagraph = s.Record.IsParagraph
	if s.Feed == nil {
		c.children = append(c.children, ib.build(ib.lines))
		c.open = nil
		c.pending = s.Next
		return
	}
	ib.feed = s.Feed
}

// finishOpen completes the open inner block, if any, as it stands.
func (c *containerParser) finishOpen() {
	if c.open == nil {
		return
	}
	c.children = append(c.children, c.open.build(c.open.lines))
	c.open = nil
}

// build finishes the container. The open inner block, if any,
// completes as it stands first.
func (c *containerParser) build(lines []Line) *Block {
	c.finishOpen()
	return c.wrap(lines, c.children)
}

// drain removes and returns the inner blocks completed so far.
// The document's top level uses it to emit blocks as they finish.
func (c *containerParser) drain() []*Block {
	out := c.children
	c.children = nil
	return out
}

// blockQuote opens a [block quote]. The membership test doubles as the
// start condition: up to three columns of indentation, '>', and an
// optional following space, stripped entirely.
//
// [block quote]: https://spec.commonmark.org/0.30/#block-quotes
func (d *dispatcher) blockQuote(ctx *Context, ln Line) (Start, bool) {
	inner, ok := quoteMember(ln)
	if !ok {
		return Start{}, false
	}
	return d.openContainer(ctx, ln, inner, quoteMember, buildBlockQuote), true
}

func quoteMember(ln Line) (Line, bool) {
	if ln.Indent() >= codeBlockIndentLimit {
		return Line{}, false
	}
	t := ln.TrimIndent().Text()
	if len(t) == 0 || t[0] != '>' {
		return Line{}, false
	}
	t = t[1:]
	if len(t) > 0 && t[0] == ' ' {
		t = t[1:]
	}
	return MakeLine(t), true
}

func buildBlockQuote(lines []Line, children []*Block) *Block {
	return &Block{kind: BlockQuoteKind, lines: lines, children: children}
}

// listMarker describes a parsed [list item marker].
//
// [list item marker]: https://spec.commonmark.org/0.30/#list-items
type listMarker struct {
	marker  string
	ordinal int // -1 for bullets
	width   int // leading indentation plus marker, in columns
	content int // continuation indentation required of member lines
}

// parseListMarker parses a bullet ('-', '+', '*') or an ordinal of one
// to nine digits followed by '.' or ')', after up to three columns of
// indentation and followed by at least one space. The continuation
// indentation is the marker width plus the following-space run, except
// that a run wider than four columns collapses to one: the content of
//
//	-     foo
//
// starts one column after the marker, leaving four columns of
// indentation for an inner code block.
func parseListMarker(ln Line) (listMarker, bool) {
	indent := ln.Indent()
	if indent >= codeBlockIndentLimit {
		return listMarker{}, false
	}
	t := ln.TrimIndent().Text()
	m := listMarker{ordinal: -1}
	i := 0
	switch {
	case len(t) > 0 && (t[0] == '-' || t[0] == '+' || t[0] == '*'):
		i = 1
	default:
		for i < len(t) && i < 9 && isASCIIDigit(t[i]) {
			i++
		}
		if i == 0 || i >= len(t) || (t[i] != '.' && t[i] != ')') {
			return listMarker{}, false
		}
		m.ordinal, _ = strconv.Atoi(t[:i])
		i++
	}
	m.marker = t[:i]
	gap := 0
	for i+gap < len(t) && t[i+gap] == ' ' {
		gap++
	}
	if gap == 0 {
		return listMarker{}, false
	}
	if gap > 4 {
		gap = 1
	}
	m.width = indent + i
	m.content = m.width + gap
	return m, true
}

// listItem opens a [list item]. The first line has its marker blanked
// out before the continuation indentation is stripped, so that
// indentation-sensitive inner detectors measure from column zero.
// Member lines must carry the continuation indentation; blank lines
// always pass.
//
// [list item]: https://spec.commonmark.org/0.30/#list-items
func (d *dispatcher) listItem(ctx *Context, ln Line) (Start, bool) {
	m, ok := parseListMarker(ln)
	if !ok {
		return Start{}, false
	}
	member := func(l Line) (Line, bool) {
		if !l.IsBlank() && l.Indent() < m.content {
			return Line{}, false
		}
		return l.CutIndent(m.content), true
	}
	first := ln.BlankIndent(m.width).CutIndent(m.content)
	wrap := func(lines []Line, children []*Block) *Block {
		return &Block{
			kind:     ListItemKind,
			lines:    lines,
			children: children,
			marker:   m.marker,
			ordinal:  m.ordinal,
		}
	}
	return d.openContainer(ctx, ln, first, member, wrap), true
}
