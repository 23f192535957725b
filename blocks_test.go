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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeading(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "Level1",
			lines: []string{"# Hello"},
			want:  []string{`heading 1 "Hello"`},
		},
		{
			name:  "Level6",
			lines: []string{"###### deep"},
			want:  []string{`heading 6 "deep"`},
		},
		{
			name:  "SevenHashes",
			lines: []string{"####### x"},
			want:  []string{`paragraph "####### x"`},
		},
		{
			name:  "NoSpaceAfterMarker",
			lines: []string{"#x"},
			want:  []string{`paragraph "#x"`},
		},
		{
			name:  "Indented3",
			lines: []string{"   ## x"},
			want:  []string{`heading 2 "x"`},
		},
		{
			name:  "Indented4IsCode",
			lines: []string{"    # x"},
			want:  []string{`indented "# x"`},
		},
		{
			name:  "TabAfterMarker",
			lines: []string{"#\tx"},
			want:  []string{`heading 1 "x"`},
		},
		{
			name:  "InterruptsParagraph",
			lines: []string{"text", "# head"},
			want:  []string{`paragraph "text"`, `heading 1 "head"`},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := outlineBlocks(parseLines(test.lines...))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("blocks (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFencedCode(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "RoundTrip",
			lines: []string{"```", "abc", "```"},
			want:  []string{"fenced ` \"\" \"abc\""},
		},
		{
			name:  "Unclosed",
			lines: []string{"```", "abc"},
			want:  []string{"fenced ` \"\" \"abc\""},
		},
		{
			name:  "InfoString",
			lines: []string{"``` go run", "x()", "```"},
			want:  []string{"fenced ` \"go run\" \"x()\""},
		},
		{
			name:  "BacktickInInfoDeclines",
			lines: []string{"``` a`b"},
			want:  []string{"paragraph \"``` a`b\""},
		},
		{
			name:  "TildeInfoMayContainBacktick",
			lines: []string{"~~~ a`b", "x", "~~~"},
			want:  []string{"fenced ~ \"a`b\" \"x\""},
		},
		{
			name:  "CloseNeedsOpeningLength",
			lines: []string{"````", "```", "````"},
			want:  []string{"fenced ` \"\" \"```\""},
		},
		{
			name:  "CloseCharMustMatch",
			lines: []string{"```", "~~~", "```"},
			want:  []string{"fenced ` \"\" \"~~~\""},
		},
		{
			name:  "OpeningIndentStripped",
			lines: []string{"  ```", "    a", "  ```"},
			want:  []string{"fenced ` \"\" \"  a\""},
		},
		{
			name:  "TwoCharRunIsText",
			lines: []string{"``", "x"},
			want:  []string{"paragraph \"``\\nx\""},
		},
		{
			name:  "InterruptsParagraph",
			lines: []string{"text", "```", "a", "```"},
			want:  []string{`paragraph "text"`, "fenced ` \"\" \"a\""},
		},
		{
			name:  "BlankLinesKept",
			lines: []string{"```", "a", "", "b", "```"},
			want:  []string{"fenced ` \"\" \"a\\n\\nb\""},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := outlineBlocks(parseLines(test.lines...))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("blocks (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIndentedCode(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "AfterBlank",
			lines: []string{"", "    bar"},
			want:  []string{"blank", `indented "bar"`},
		},
		{
			name:  "CannotInterruptParagraph",
			lines: []string{"foo", "    bar"},
			want:  []string{`paragraph "foo\nbar"`},
		},
		{
			name:  "BlankLinesInside",
			lines: []string{"    a", "", "    b"},
			want:  []string{`indented "a\n\nb"`},
		},
		{
			name:  "EndsBeforeUnindentedLine",
			lines: []string{"    a", "x"},
			want:  []string{`indented "a"`, `paragraph "x"`},
		},
		{
			name:  "TrailingBlanksExcludedFromText",
			lines: []string{"    a", "", "", "x"},
			want:  []string{`indented "a"`, `paragraph "x"`},
		},
		{
			name:  "ExtraIndentKept",
			lines: []string{"      a"},
			want:  []string{`indented "  a"`},
		},
		{
			name:  "TabIndent",
			lines: []string{"\ta"},
			want:  []string{`indented "a"`},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := outlineBlocks(parseLines(test.lines...))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("blocks (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHardBreak(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"foo  ", true},
		{"foo ", false},
		{"foo", false},
		{`foo\`, true},
		{`foo\\`, false},
		{`foo\\\`, true},
		{"x<br>", true},
		{"x<BR/>", true},
		{"x<br />", true},
		{"x<br >", false},
		{"x<b>", false},
	}
	for _, test := range tests {
		if got := hasHardBreak(MakeLine(test.text)); got != test.want {
			t.Errorf("hasHardBreak(%q) = %t; want %t", test.text, got, test.want)
		}
	}
}

func TestHardBreakEndsParagraph(t *testing.T) {
	// After a hard break the next line goes through the full detector
	// list, so an indented line may open a code block; without the
	// break the same line would be a lazy continuation.
	got := outlineBlocks(parseLines("foo  ", "    bar"))
	want := []string{`paragraph "foo  "`, `indented "bar"`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("blocks (-want +got):\n%s", diff)
	}

	got = outlineBlocks(parseLines("foo", "    bar"))
	want = []string{`paragraph "foo\nbar"`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("no-break blocks (-want +got):\n%s", diff)
	}
}

func TestBlankRun(t *testing.T) {
	got := outlineBlocks(parseLines("", "", "a", ""))
	want := []string{"blank", `paragraph "a"`, "blank"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("blocks (-want +got):\n%s", diff)
	}
	blocks := parseLines("", " \t", "a")
	if len(blocks) != 2 || blocks[0].Kind() != BlankKind {
		t.Fatalf("blocks = %v; want [Blank Paragraph]", outlineBlocks(blocks))
	}
	if got := len(blocks[0].Lines()); got != 2 {
		t.Errorf("blank run consumed %d lines; want 2", got)
	}
}

func TestParagraphTextTrimsIndent(t *testing.T) {
	got := parseLines("  foo", "   bar")
	if len(got) != 1 {
		t.Fatalf("len(blocks) = %d; want 1", len(got))
	}
	if text := got[0].Text(); text != "foo\nbar" {
		t.Errorf("Text() = %q; want %q", text, "foo\nbar")
	}
	if raw := joinLineText(got[0].Lines()); !strings.HasPrefix(raw, "  foo") {
		t.Errorf("raw lines = %q; want original indentation retained", raw)
	}
}
