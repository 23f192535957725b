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
	"strings"

	"golang.org/x/net/html/atom"
)

// htmlBlockConditions is the set of [HTML block] start and end
// conditions, indexed by sub-type minus one. Every sub-type consumes
// its lines verbatim. For the first five the line matching the end
// condition belongs to the block; the tag-name sub-type ends at a
// blank line, which is not consumed. An unterminated block runs to the
// end of input.
//
// [HTML block]: https://spec.commonmark.org/0.30/#html-blocks
var htmlBlockConditions = []struct {
	start       func(line string) bool
	end         func(line string) bool
	consumesEnd bool
}{
	{
		start: func(line string) bool {
			for _, starter := range htmlRawTextTags {
				if hasCaseInsensitivePrefix(line, "<"+starter) {
					rest := line[1+len(starter):]
					if rest == "" || isSpaceOrTab(rest[0]) || rest[0] == '>' {
						return true
					}
				}
			}
			return false
		},
		end: func(line string) bool {
			for _, ender := range htmlRawTextTags {
				if caseInsensitiveContains(line, "</"+ender+">") {
					return true
				}
			}
			return false
		},
		consumesEnd: true,
	},
	{
		start:       func(line string) bool { return strings.HasPrefix(line, "<!--") },
		end:         func(line string) bool { return strings.Contains(line, "-->") },
		consumesEnd: true,
	},
	{
		start:       func(line string) bool { return strings.HasPrefix(line, "<?") },
		end:         func(line string) bool { return strings.Contains(line, "?>") },
		consumesEnd: true,
	},
	{
		start: func(line string) bool {
			return strings.HasPrefix(line, "<!") && len(line) >= 3 && isASCIILetter(line[2])
		},
		end:         func(line string) bool { return strings.Contains(line, ">") },
		consumesEnd: true,
	},
	{
		start:       func(line string) bool { return strings.HasPrefix(line, "<![CDATA[") },
		end:         func(line string) bool { return strings.Contains(line, "]]>") },
		consumesEnd: true,
	},
	{
		start: func(line string) bool {
			switch {
			case strings.HasPrefix(line, "</"):
				line = line[2:]
			case strings.HasPrefix(line, "<"):
				line = line[1:]
			default:
				return false
			}
			for _, name := range htmlBlockTags {
				if hasCaseInsensitivePrefix(line, name) {
					rest := line[len(name):]
					if rest == "" || isSpaceOrTab(rest[0]) || rest[0] == '>' || strings.HasPrefix(rest, "/>") {
						return true
					}
				}
			}
			return false
		},
	},
}

// htmlParser tracks one open HTML block.
type htmlParser struct {
	typ int // 1-6
}

// startHTMLBlock tries the six HTML block sub-type start conditions in
// order on a line indented less than four columns.
func startHTMLBlock(ctx *Context, ln Line) (Start, bool) {
	if ln.Indent() >= codeBlockIndentLimit {
		return Start{}, false
	}
	t := ln.TrimIndent().Text()
	for i, cond := range htmlBlockConditions {
		if !cond.start(t) {
			continue
		}
		h := &htmlParser{typ: i + 1}
		if cond.consumesEnd && cond.end(t) {
			// The opening line satisfies the end condition.
			return Start{Record: Record{Line: ln, Build: h.build}}, true
		}
		return Start{Record: Record{Line: ln, Build: h.build}, Feed: h.feed}, true
	}
	return Start{}, false
}

func (h *htmlParser) feed(ctx *Context, ln Line) Feed {
	cond := htmlBlockConditions[h.typ-1]
	if !cond.consumesEnd {
		// Tag-name sub-type: a blank line ends the block and stays
		// unconsumed.
		if ln.IsBlank() {
			return Feed{}
		}
		return Feed{Open: &Start{Record: Record{Line: ln, Build: h.build}, Feed: h.feed}}
	}
	rec := Record{Line: ln, Build: h.build}
	if cond.end(ln.Text()) {
		return Feed{Open: &Start{Record: rec}}
	}
	return Feed{Open: &Start{Record: rec, Feed: h.feed}}
}

func (h *htmlParser) build(lines []Line) *Block {
	return &Block{kind: HTMLBlockKind, lines: lines, htmlTyp: h.typ, text: joinLineText(lines)}
}

func hasCaseInsensitivePrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if toLowerASCII(s[i]) != toLowerASCII(prefix[i]) {
			return false
		}
	}
	return true
}

func caseInsensitiveContains(s, search string) bool {
	for i := 0; i+len(search) <= len(s); i++ {
		if hasCaseInsensitivePrefix(s[i:], search) {
			return true
		}
	}
	return false
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpaceOrTab(c byte) bool {
	return c == ' ' || c == '\t'
}

// Tag-category tables for the HTML block detector.
// These are configuration data, not part of the engine proper.
var (
	// htmlRawTextTags name the elements whose content is consumed
	// verbatim until the matching closing tag (sub-type 1).
	htmlRawTextTags = []string{
		atom.Pre.String(),
		atom.Script.String(),
		atom.Style.String(),
		atom.Textarea.String(),
	}

	// htmlBlockTags name the block-level elements recognized by the
	// tag-name sub-type (6).
	htmlBlockTags = []string{
		atom.Address.String(),
		atom.Article.String(),
		atom.Aside.String(),
		atom.Base.String(),
		atom.Basefont.String(),
		atom.Blockquote.String(),
		atom.Body.String(),
		atom.Caption.String(),
		atom.Center.String(),
		atom.Col.String(),
		atom.Colgroup.String(),
		atom.Dd.String(),
		atom.Details.String(),
		atom.Dialog.String(),
		atom.Dir.String(),
		atom.Div.String(),
		atom.Dl.String(),
		atom.Dt.String(),
		atom.Fieldset.String(),
		atom.Figcaption.String(),
		atom.Figure.String(),
		atom.Footer.String(),
		atom.Form.String(),
		atom.Frame.String(),
		atom.Frameset.String(),
		atom.H1.String(),
		atom.H2.String(),
		atom.H3.String(),
		atom.H4.String(),
		atom.H5.String(),
		atom.H6.String(),
		atom.Head.String(),
		atom.Header.String(),
		atom.Hr.String(),
		atom.Html.String(),
		atom.Iframe.String(),
		atom.Legend.String(),
		atom.Li.String(),
		atom.Link.String(),
		atom.Main.String(),
		atom.Menu.String(),
		atom.Menuitem.String(),
		atom.Nav.String(),
		atom.Noframes.String(),
		atom.Ol.String(),
		atom.Optgroup.String(),
		atom.Option.String(),
		atom.P.String(),
		atom.Param.String(),
		atom.Section.String(),
		atom.Source.String(),
		atom.Summary.String(),
		atom.Table.String(),
		atom.Tbody.String(),
		atom.Td.String(),
		atom.Tfoot.String(),
		atom.Th.String(),
		atom.Thead.String(),
		atom.Title.String(),
		atom.Tr.String(),
		atom.Track.String(),
		atom.Ul.String(),
	}
)
