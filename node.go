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

// A Node is one element of the rendered visual tree.
// The variant set is closed:
// [TextNode], [BoxNode], [GridNode], [ImageNode], [SpacerNode], [RuleNode].
// Nodes are built fresh on every render pass,
// owned by the caller once returned,
// and never shared or mutated afterwards.
type Node interface {
	visualNode()
}

// Insets is padding around a box, in layout units.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// TextNode is a run of rich-text markup for the host toolkit's
// markup-aware label. Markup is already escaped;
// the host must not re-escape it.
type TextNode struct {
	// Markup is the bracket-tag rich text to display.
	Markup string
	// FontName and FontSize select the font.
	FontName string
	FontSize float64
	// Color is the text color; Background, if nonempty, fills the
	// text's box (used by code blocks).
	Color      string
	Background string
	Bold       bool
	// LineHeight is the line spacing multiplier (zero means host default).
	LineHeight float64
	// Align and VAlign position the text within its box.
	Align  Alignment
	VAlign VerticalAlignment
	// Width is an optional width constraint (zero means unconstrained).
	Width float64
	// CodeLanguage is the fence info string for code block text,
	// kept as metadata for syntax-highlighting consumers.
	// Empty for everything that is not a code block.
	CodeLanguage string
	// Monospace reports whether Markup is preformatted code.
	Monospace bool
}

// BoxNode lays out its children in a row or column.
type BoxNode struct {
	// Vertical selects a column layout; false means a row.
	Vertical bool
	Children []Node
	Padding  Insets
}

// GridNode lays out cells left to right, top to bottom,
// in a fixed number of columns.
type GridNode struct {
	Columns int
	Cells   []Node
}

// ImageNode displays an image; the host performs the actual fetch.
type ImageNode struct {
	Source  string
	AltText string
}

// SpacerNode is fixed-size empty space.
type SpacerNode struct {
	Size float64
}

// RuleNode is a thematic break: a full-width horizontal rule.
type RuleNode struct{}

func (TextNode) visualNode()   {}
func (BoxNode) visualNode()    {}
func (GridNode) visualNode()   {}
func (ImageNode) visualNode()  {}
func (SpacerNode) visualNode() {}
func (RuleNode) visualNode()   {}
