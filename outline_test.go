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

// outlineBlocks renders blocks in the corpus outline notation:
// one row per block, children indented by two spaces.
func outlineBlocks(blocks []*Block) []string {
	var rows []string
	for _, b := range blocks {
		rows = appendOutline(rows, b, 0)
	}
	return rows
}

func appendOutline(rows []string, b *Block, depth int) []string {
	indent := strings.Repeat("  ", depth)
	switch b.Kind() {
	case BlankKind:
		rows = append(rows, indent+"blank")
	case ParagraphKind:
		rows = append(rows, fmt.Sprintf("%sparagraph %q", indent, b.Text()))
	case HeadingKind:
		rows = append(rows, fmt.Sprintf("%sheading %d %q", indent, b.HeadingLevel(), b.Text()))
	case FencedCodeBlockKind:
		rows = append(rows, fmt.Sprintf("%sfenced %c %q %q", indent, b.FenceChar(), b.Info(), b.Text()))
	case IndentedCodeBlockKind:
		rows = append(rows, fmt.Sprintf("%sindented %q", indent, b.Text()))
	case HTMLBlockKind:
		rows = append(rows, fmt.Sprintf("%shtml %d %q", indent, b.HTMLType(), b.Text()))
	case BlockQuoteKind:
		rows = append(rows, indent+"quote")
	case ListItemKind:
		rows = append(rows, fmt.Sprintf("%sitem %q", indent, b.Marker()))
	case FrontMatterKind:
		rows = append(rows, fmt.Sprintf("%sfrontmatter %q", indent, b.Text()))
	default:
		rows = append(rows, fmt.Sprintf("%s%v %q", indent, b.Kind(), b.Text()))
	}
	for _, child := range b.Children() {
		rows = appendOutline(rows, child, depth+1)
	}
	return rows
}

func parseLines(lines ...string) []*Block {
	return Parse(nil, []byte(strings.Join(lines, "\n")))
}
