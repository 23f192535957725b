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

// mdblocks parses Markdown from a file or stdin and prints the block
// structure, one row per block, children indented. With --front-matter
// it prints the decoded front matter instead.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/meelkor/rewrap/markdown"
)

func main() {
	var (
		frontMatterOnly bool
		showBlank       bool
	)
	pflag.BoolVarP(&frontMatterOnly, "front-matter", "f", false, "print the decoded front matter and exit")
	pflag.BoolVar(&showBlank, "blank", false, "include blank-run blocks in the outline")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [file]\n\nFlags:\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if err := run(pflag.Args(), os.Stdout, frontMatterOnly, showBlank); err != nil {
		fmt.Fprintln(os.Stderr, "mdblocks:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, frontMatterOnly, showBlank bool) error {
	in := io.Reader(os.Stdin)
	if len(args) > 1 {
		return fmt.Errorf("expected at most one input file, got %d", len(args))
	}
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	rp := markdown.NewReaderParser(nil, in)
	for {
		b, err := rp.NextBlock()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if frontMatterOnly {
			if b.Kind() != markdown.FrontMatterKind {
				return fmt.Errorf("document has no front matter")
			}
			return printFrontMatter(out, b)
		}
		printOutline(out, b, showBlank)
	}
}

func printFrontMatter(out io.Writer, b *markdown.Block) error {
	var doc map[string]any
	if err := markdown.DecodeFrontMatter(b, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	defer enc.Close()
	return enc.Encode(doc)
}

func printOutline(out io.Writer, root *markdown.Block, showBlank bool) {
	markdown.Walk(root, &markdown.WalkOptions{
		Pre: func(c *markdown.Cursor) bool {
			b := c.Block()
			if b.Kind() == markdown.BlankKind && !showBlank {
				return false
			}
			fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", c.Depth()), describe(b))
			return true
		},
	})
}

func describe(b *markdown.Block) string {
	switch b.Kind() {
	case markdown.HeadingKind:
		return fmt.Sprintf("heading %d %q", b.HeadingLevel(), b.Text())
	case markdown.FencedCodeBlockKind:
		return fmt.Sprintf("fenced %c info=%q (%d bytes)", b.FenceChar(), b.Info(), len(b.Text()))
	case markdown.IndentedCodeBlockKind:
		return fmt.Sprintf("indented (%d bytes)", len(b.Text()))
	case markdown.HTMLBlockKind:
		return fmt.Sprintf("html type=%d (%d lines)", b.HTMLType(), len(b.Lines()))
	case markdown.ParagraphKind:
		return fmt.Sprintf("paragraph %q", firstRow(b.Text()))
	case markdown.BlockQuoteKind:
		return "quote"
	case markdown.ListItemKind:
		return fmt.Sprintf("item %q", b.Marker())
	case markdown.FrontMatterKind:
		return fmt.Sprintf("front matter (%d lines)", len(b.Lines()))
	case markdown.BlankKind:
		return fmt.Sprintf("blank (%d lines)", len(b.Lines()))
	default:
		return b.Kind().String()
	}
}

func firstRow(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i] + "…"
	}
	return text
}
