// Copyright 2026 Ross Light
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

package mdvisual_test

import (
	"fmt"

	"zombiezen.com/go/mdvisual"
	"zombiezen.com/go/mdvisual/parser"
)

func ExampleRenderInline() {
	// Parse Markdown into a token tree and any link references.
	tokens, refs := parser.Parse([]byte("Visit the [docs](https://example.com/) *now*.\n"))
	// Render the paragraph's inline content as markup text.
	markup := mdvisual.RenderInline(tokens[0].Children, mdvisual.DefaultStyle(), refs)
	fmt.Println(markup)
	// Output:
	// Visit the [ref=https://example.com/][color=#4da6ff][u]docs[/u][/color][/ref] [i]now[/i].
}

func ExampleEscape() {
	// Bracket characters in document text are escaped
	// so they can never act as markup tags.
	fmt.Println(mdvisual.Escape("a[b]c & d"))
	// Output:
	// a&bl;b&br;c &amp; d
}
