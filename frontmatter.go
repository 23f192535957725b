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

	"gopkg.in/yaml.v3"
)

// isFrontMatterMarker reports whether the line is the "---" front
// matter delimiter: up to three columns of indentation, three dashes,
// and trailing whitespace only. Front matter opens only when the very
// first line of the document matches, and runs verbatim until the
// next matching line (or the end of input, if unterminated).
func isFrontMatterMarker(ln Line) bool {
	if ln.Indent() >= codeBlockIndentLimit {
		return false
	}
	return strings.TrimRight(ln.TrimIndent().Text(), " \t") == "---"
}

// buildFrontMatter folds the consumed region, marker lines included,
// into a front matter block. terminated reports whether a closing
// marker was seen; the block's text is the region between the markers.
func buildFrontMatter(lines []Line, terminated bool) *Block {
	body := lines[1:]
	if terminated && len(body) > 0 {
		body = body[:len(body)-1]
	}
	return &Block{kind: FrontMatterKind, lines: lines, text: joinLineText(body)}
}

// DecodeFrontMatter unmarshals the YAML between a front matter block's
// markers into v.
func DecodeFrontMatter(b *Block, v any) error {
	if b.Kind() != FrontMatterKind {
		return fmt.Errorf("markdown: decode front matter: block is %v, not %v", b.Kind(), FrontMatterKind)
	}
	if err := yaml.Unmarshal([]byte(b.Text()), v); err != nil {
		return fmt.Errorf("markdown: decode front matter: %w", err)
	}
	return nil
}
