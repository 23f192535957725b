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

// Package markdown provides an incremental, line-at-a-time block
// structure parser for a [CommonMark]-style markup language, with an
// optional front matter extension.
//
// Lines go in one at a time and completed blocks come out as soon as
// their last line has been seen; no decision depends on lookahead
// beyond the current line, so the parser is usable on streams. Parsing
// is total: every sequence of lines produces a sequence of blocks that
// partitions it, and malformed constructs degrade to "runs to end of
// input" rather than failing.
//
// Inline content (emphasis, links, code spans) is not parsed; blocks
// retain their raw consumed lines for a later pipeline stage.
//
// [CommonMark]: https://commonmark.org/
package markdown

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"go4.org/bytereplacer"
)

type parserPhase int8

const (
	atFirstLine parserPhase = iota
	inFrontMatter
	inContent
)

// A Parser incrementally converts an ordered sequence of lines into a
// sequence of completed blocks. The zero value is not usable; call
// [NewParser].
//
// The top level of the document is the block dispatcher wrapped in a
// trivial always-member container, so nested and top-level parsing
// share one calling convention.
type Parser struct {
	ctx    *Context
	d      *dispatcher
	top    *containerParser
	phase  parserPhase
	fm     []Line
	closed bool
}

// NewParser returns a parser for a single document.
// ctx may be nil.
func NewParser(ctx *Context) *Parser {
	return &Parser{ctx: ctx, d: newDispatcher(ctx)}
}

// FeedLine advances the parser by one line (without its terminator)
// and returns the blocks this line completed, possibly none.
// FeedLine panics if called after [Parser.Close].
func (p *Parser) FeedLine(text string) []*Block {
	if p.closed {
		panic("markdown: FeedLine called after Close")
	}
	ln := MakeLine(text)

	switch p.phase {
	case atFirstLine:
		if isFrontMatterMarker(ln) {
			p.phase = inFrontMatter
			p.fm = []Line{ln}
			return nil
		}
		p.phase = inContent
	case inFrontMatter:
		p.fm = append(p.fm, ln)
		if isFrontMatterMarker(ln) {
			p.phase = inContent
			out := []*Block{buildFrontMatter(p.fm, true)}
			p.fm = nil
			return out
		}
		return nil
	}

	if p.top == nil {
		p.top = &containerParser{
			d:      p.d,
			member: func(l Line) (Line, bool) { return l, true },
		}
		p.top.begin(p.d.dispatch(p.ctx, ln))
	} else {
		p.top.feed(p.ctx, ln)
	}
	return p.top.drain()
}

// Close marks the end of input and returns the remaining blocks:
// whatever is still open completes exactly as it stands ("complete at
// end of input"). The engine itself never decides that input has
// ended; integrators must call Close once the line source is
// exhausted. Feeding more lines afterwards panics.
func (p *Parser) Close() []*Block {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.phase == inFrontMatter {
		out := []*Block{buildFrontMatter(p.fm, false)}
		p.fm = nil
		return out
	}
	if p.top == nil {
		return nil
	}
	p.top.finishOpen()
	return p.top.drain()
}

var nulReplacer = bytereplacer.New("\x00", "�")

// Parse converts source into its complete block sequence.
// NUL bytes are replaced with the Unicode replacement character.
// ctx may be nil.
func Parse(ctx *Context, source []byte) []*Block {
	if bytes.IndexByte(source, 0) >= 0 {
		source = nulReplacer.Replace(bytes.Clone(source))
	}
	p := NewParser(ctx)
	var blocks []*Block
	for _, text := range splitLines(string(source)) {
		blocks = append(blocks, p.FeedLine(text)...)
	}
	return append(blocks, p.Close()...)
}

// splitLines splits source into physical lines, recognizing LF, CRLF,
// and lone CR terminators. A terminator on the final line does not
// produce a trailing empty line.
func splitLines(source string) []string {
	if source == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '\n':
			lines = append(lines, source[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, source[start:i])
			if i+1 < len(source) && source[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(source) {
		lines = append(lines, source[start:])
	}
	return lines
}

// A ReaderParser pulls blocks out of an [io.Reader] one at a time.
type ReaderParser struct {
	p     *Parser
	br    *bufio.Reader
	queue []*Block
	err   error
}

// NewReaderParser returns a parser reading lines from r.
// ctx may be nil.
func NewReaderParser(ctx *Context, r io.Reader) *ReaderParser {
	return &ReaderParser{p: NewParser(ctx), br: bufio.NewReader(r)}
}

// NextBlock returns the next completed block.
// It returns [io.EOF] after the last block of the document.
func (rp *ReaderParser) NextBlock() (*Block, error) {
	for len(rp.queue) == 0 {
		if rp.err != nil {
			return nil, rp.err
		}
		text, err := rp.br.ReadString('\n')
		switch {
		case err == nil:
			rp.queue = rp.p.FeedLine(chompLine(text))
		case err == io.EOF:
			if text != "" {
				rp.queue = rp.p.FeedLine(chompLine(text))
			}
			rp.queue = append(rp.queue, rp.p.Close()...)
			rp.err = io.EOF
		default:
			rp.err = fmt.Errorf("markdown: read line: %w", err)
			return nil, rp.err
		}
	}
	b := rp.queue[0]
	rp.queue = rp.queue[1:]
	return b, nil
}

func chompLine(text string) string {
	text = strings.TrimSuffix(text, "\n")
	text = strings.ReplaceAll(text, "\x00", "�")
	return strings.TrimSuffix(text, "\r")
}
