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

package mdvisual

// MaxNestingDepth is the hard cap on structurally recursive constructs
// (lists and block quotes). Subtrees nested deeper render as a single
// placeholder node instead of descending further,
// which bounds stack usage independent of input depth.
const MaxNestingDepth = 10

// listIndentUnit is the leading-edge indentation added per list level.
const listIndentUnit = 20

// listBottomSpacing is the gap below a top-level list.
// Nested lists get no bottom spacing of their own,
// so deeply nested structures do not compound gaps.
const listBottomSpacing = 10

// renderContext carries the per-call state of one render pass.
// It is created inside [Render] and never escapes it,
// so concurrent renders never share mutable state.
type renderContext struct {
	style Style
	refs  ReferenceMap

	// depth counts entered lists and block quotes.
	// Maintained by enter/exit around every recursive descent.
	depth int
	// lists tracks marker state per open list, innermost last.
	lists []listLevel
}

// listLevel is the marker state of one open list.
type listLevel struct {
	ordered bool
	start   int
}

// enter records one level of structural recursion
// and reports whether descent is still within [MaxNestingDepth].
// Callers that get false must emit [renderContext.truncated]
// exactly once for the offending subtree and skip its children.
func (rc *renderContext) enter() bool {
	rc.depth++
	return rc.depth <= MaxNestingDepth
}

// exit undoes one enter. Always paired via defer.
func (rc *renderContext) exit() {
	rc.depth--
}

// truncated is the single placeholder emitted for a subtree
// beyond the nesting cap.
func (rc *renderContext) truncated() Node {
	return TextNode{
		Markup:   Escape("[content truncated: nesting too deep]"),
		FontName: rc.style.BodyFontName,
		FontSize: rc.style.BaseFontSize,
		Color:    rc.style.BodyColor,
		Align:    rc.style.resolveAlign(AlignNone),
		VAlign:   rc.style.VerticalAlign,
	}
}

// text builds a body-styled text node from already-rendered markup.
func (rc *renderContext) text(markup string) TextNode {
	return TextNode{
		Markup:     markup,
		FontName:   rc.style.BodyFontName,
		FontSize:   rc.style.BaseFontSize,
		Color:      rc.style.BodyColor,
		LineHeight: rc.style.LineHeight,
		Align:      rc.style.resolveAlign(AlignNone),
		VAlign:     rc.style.VerticalAlign,
		Width:      rc.style.TextWidth,
	}
}
