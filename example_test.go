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

package markdown_test

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/meelkor/rewrap/markdown"
)

func ExampleParse() {
	blocks := markdown.Parse(nil, []byte(`---
title: Hello
---
# Greetings

> Nice to meet you.`))
	for _, b := range blocks {
		fmt.Println(b.Kind())
	}
	// Output:
	// FrontMatter
	// Heading
	// Blank
	// BlockQuote
}

func ExampleReaderParser() {
	input := strings.NewReader("# Title\n\nFirst paragraph.\nStill the first paragraph.\n\nSecond paragraph.\n")
	rp := markdown.NewReaderParser(nil, input)
	for {
		b, err := rp.NextBlock()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			fmt.Println("error:", err)
			return
		}
		if b.Kind() == markdown.ParagraphKind {
			fmt.Printf("%q\n", b.Text())
		}
	}
	// Output:
	// "First paragraph.\nStill the first paragraph."
	// "Second paragraph."
}

func ExampleDecodeFrontMatter() {
	blocks := markdown.Parse(nil, []byte("---\ntitle: Release Notes\nweight: 3\n---\nBody text."))
	var meta struct {
		Title  string `yaml:"title"`
		Weight int    `yaml:"weight"`
	}
	if err := markdown.DecodeFrontMatter(blocks[0], &meta); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(meta.Title, meta.Weight)
	// Output:
	// Release Notes 3
}
