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

// Package blocktest provides the shared corpus of block parsing cases.
package blocktest

import (
	_ "embed"
	"encoding/json"
)

// Case is a single parsing case: input lines and the expected block
// outline, one row per block, children indented by two spaces.
type Case struct {
	Name    string   `json:"name"`
	Lines   []string `json:"lines"`
	Outline []string `json:"outline"`
}

//go:embed cases.json
var caseData []byte

// Load returns the corpus.
func Load() ([]Case, error) {
	var cases []Case
	if err := json.Unmarshal(caseData, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
