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

// Context carries per-document configuration.
// It is threaded unchanged through every detector and feeder call;
// the engine reads it only while composing the detector lists
// and never mutates it.
type Context struct {
	// Extension, if non-nil, is an additional block detector tried
	// after list items and before fenced code in both detector lists.
	// Its trigger condition and produced block are entirely
	// caller-defined.
	Extension Detector
}

// A Detector is a block-start function.
// It examines the first line of a candidate block;
// ok reports whether the detector claims the line.
type Detector func(ctx *Context, ln Line) (Start, bool)

// A Feeder is a line-feed function.
// It receives every line after an open block's first.
type Feeder func(ctx *Context, ln Line) Feed

// A BuildFunc folds a block's consumed lines into the finished block.
// Container builders additionally close over their completed inner
// blocks.
type BuildFunc func(lines []Line) *Block

// A Record describes one line consumed by a block.
// Whoever drives a block stores the Line of every record it sees and,
// when the block ends, applies the most recent Build to the stored
// lines.
//
// IsParagraph must be accurate on every record: the container
// machinery's lazy-continuation decision depends on it.
type Record struct {
	Line        Line
	Build       BuildFunc
	IsParagraph bool
}

// A Start is the outcome of feeding the first line of a block.
// A non-nil Feed means the block is still open and subsequent lines go
// through it. A nil Feed means the block completed on this line; Next,
// when non-nil, names a pre-arranged detector for the immediately
// following line, and a nil Next means the caller must dispatch that
// line from scratch.
type Start struct {
	Record Record
	Feed   Feeder
	Next   Detector
}

// A Feed is the outcome of feeding a subsequent line to an open block.
// A non-nil Open means the line was absorbed and Open is the nested
// outcome (usually still open; a nil Open.Feed means the block
// completed on this line). A nil Open means the block closed strictly
// before this line: no further lines may be fed to it, and Restart,
// when non-nil, is a precomputed outcome that has already consumed the
// line; a nil Restart means the caller must dispatch the line from
// scratch.
type Feed struct {
	Open    *Start
	Restart *Start
}
