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

import (
	"fmt"
	"strings"
)

// A Block is a completed structural element of a Markdown document.
type Block struct {
	kind     BlockKind
	lines    []Line
	children []*Block

	level   int
	fence   byte
	info    string
	text    string
	htmlTyp int
	marker  string
	ordinal int
}

// Kind returns the kind of block. It is safe to call on a nil block.
func (b *Block) Kind() BlockKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// Lines returns the raw lines the block consumed, in arrival order.
// For containers these are the unstripped outer lines.
func (b *Block) Lines() []Line {
	if b == nil {
		return nil
	}
	return b.lines
}

// Text returns the block's processed content:
// paragraph lines joined with their indentation trimmed,
// heading text after the marker,
// code block content with fences and established indentation removed,
// HTML block lines verbatim,
// or the region between front matter markers.
// Containers have no text of their own.
func (b *Block) Text() string {
	if b == nil {
		return ""
	}
	return b.text
}

// Children returns a container block's completed inner blocks.
func (b *Block) Children() []*Block {
	if b == nil {
		return nil
	}
	return b.children
}

// HeadingLevel returns the level (1-6) of a heading block, or zero.
func (b *Block) HeadingLevel() int {
	if b.Kind() != HeadingKind {
		return 0
	}
	return b.level
}

// FenceChar returns '`' or '~' for a fenced code block, or zero.
func (b *Block) FenceChar() byte {
	if b.Kind() != FencedCodeBlockKind {
		return 0
	}
	return b.fence
}

// Info returns a fenced code block's info string (the trimmed text
// after the opening fence run).
func (b *Block) Info() string {
	if b.Kind() != FencedCodeBlockKind {
		return ""
	}
	return b.info
}

// HTMLType returns the HTML block sub-type (1-6), or zero.
func (b *Block) HTMLType() int {
	if b.Kind() != HTMLBlockKind {
		return 0
	}
	return b.htmlTyp
}

// Marker returns a list item's marker as written, like "-" or "12.".
func (b *Block) Marker() string {
	if b.Kind() != ListItemKind {
		return ""
	}
	return b.marker
}

// Ordinal returns an ordered list item's number, or -1 for bullet items
// and non-list blocks.
func (b *Block) Ordinal() int {
	if b.Kind() != ListItemKind {
		return -1
	}
	return b.ordinal
}

// BlockKind identifies the structural category of a [Block].
type BlockKind uint16

const (
	// BlankKind is a run of one or more blank lines between blocks.
	BlankKind BlockKind = 1 + iota
	// ParagraphKind is the default block for otherwise unclaimed text.
	ParagraphKind
	// HeadingKind is an ATX-style heading.
	HeadingKind
	// FencedCodeBlockKind is a backtick- or tilde-fenced code block.
	FencedCodeBlockKind
	// IndentedCodeBlockKind is a code block formed by 4-column indentation.
	IndentedCodeBlockKind
	// HTMLBlockKind is one of the six raw HTML block sub-types.
	HTMLBlockKind
	// BlockQuoteKind is a ">"-marked container.
	BlockQuoteKind
	// ListItemKind is a single bullet or ordered list item container.
	ListItemKind
	// FrontMatterKind is the optional "---"-delimited header region.
	FrontMatterKind
)

// ExtensionKind is the first kind value free for [Context.Extension]
// detectors; values below it are reserved for the built-in kinds.
const ExtensionKind BlockKind = 1 << 8

// NewBlock returns a leaf block of the given kind holding the given
// raw lines and processed text. It exists for [Context.Extension]
// detectors, whose produced block shapes are caller-defined; kind
// should be at least [ExtensionKind].
func NewBlock(kind BlockKind, lines []Line, text string) *Block {
	return &Block{kind: kind, lines: lines, text: text}
}

func (kind BlockKind) String() string {
	switch kind {
	case BlankKind:
		return "Blank"
	case ParagraphKind:
		return "Paragraph"
	case HeadingKind:
		return "Heading"
	case FencedCodeBlockKind:
		return "FencedCodeBlock"
	case IndentedCodeBlockKind:
		return "IndentedCodeBlock"
	case HTMLBlockKind:
		return "HTMLBlock"
	case BlockQuoteKind:
		return "BlockQuote"
	case ListItemKind:
		return "ListItem"
	case FrontMatterKind:
		return "FrontMatter"
	default:
		return fmt.Sprintf("BlockKind(%d)", uint16(kind))
	}
}

func joinLineText(lines []Line) string {
	rows := make([]string, len(lines))
	for i, ln := range lines {
		rows[i] = ln.Text()
	}
	return strings.Join(rows, "\n")
}
