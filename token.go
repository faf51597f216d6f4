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

// Package mdvisual renders a parsed Markdown document into a tree of
// layout-ready visual nodes.
//
// The input is a sequence of [Token] values, a typed form of the loosely
// shaped token stream produced by a Markdown parser
// (see the parser subdirectory for a [goldmark]-backed front end).
// [Render] walks the tokens and produces the [Node] tree
// that a host UI toolkit can measure and paint.
// The inverse transformation, from tokens back to Markdown text,
// lives in the format subdirectory.
//
// Rendering and serialization are total:
// unrecognized tokens are skipped, missing attributes get documented
// defaults, and nesting beyond a fixed depth is replaced with a
// placeholder node rather than exhausting the stack.
//
// [goldmark]: https://github.com/yuin/goldmark
package mdvisual

// Kind identifies a Markdown construct.
// The zero value is [InvalidKind],
// which every consumer treats as "skip this token".
type Kind uint16

const (
	InvalidKind Kind = iota

	// Inline kinds.
	TextKind
	StrongKind
	EmphasisKind
	CodeSpanKind
	StrikethroughKind
	LinkKind
	ImageKind
	SoftBreakKind
	LineBreakKind
	InlineHTMLKind

	// Block kinds.
	ParagraphKind
	BlockTextKind
	HeadingKind
	BlankLineKind
	ListKind
	ListItemKind
	BlockCodeKind
	BlockQuoteKind
	ThematicBreakKind
	TableKind
	TableHeadKind
	TableBodyKind
	TableRowKind
	TableCellKind
)

var kindNames = map[Kind]string{
	TextKind:          "text",
	StrongKind:        "strong",
	EmphasisKind:      "emphasis",
	CodeSpanKind:      "codespan",
	StrikethroughKind: "strikethrough",
	LinkKind:          "link",
	ImageKind:         "image",
	SoftBreakKind:     "softbreak",
	LineBreakKind:     "linebreak",
	InlineHTMLKind:    "inline_html",
	ParagraphKind:     "paragraph",
	BlockTextKind:     "block_text",
	HeadingKind:       "heading",
	BlankLineKind:     "blank_line",
	ListKind:          "list",
	ListItemKind:      "list_item",
	BlockCodeKind:     "block_code",
	BlockQuoteKind:    "block_quote",
	ThematicBreakKind: "thematic_break",
	TableKind:         "table",
	TableHeadKind:     "table_head",
	TableBodyKind:     "table_body",
	TableRowKind:      "table_row",
	TableCellKind:     "table_cell",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// Name returns the external string tag for the kind
// (for example "block_code"),
// or the empty string for [InvalidKind].
func (k Kind) Name() string {
	return kindNames[k]
}

// String returns the same value as [Kind.Name],
// substituting a placeholder for unknown kinds.
func (k Kind) String() string {
	if name := kindNames[k]; name != "" {
		return name
	}
	return "invalid"
}

// KindForName maps an external string tag to its [Kind].
// Unknown tags map to [InvalidKind]; KindForName never panics,
// since the tag vocabulary is owned by the parser, not by this package.
func KindForName(name string) Kind {
	return kindsByName[name]
}

// IsInline reports whether the kind is an inline construct.
func (k Kind) IsInline() bool {
	return k >= TextKind && k <= InlineHTMLKind
}

// IsBlock reports whether the kind is a block construct.
func (k Kind) IsBlock() bool {
	return k >= ParagraphKind && k <= TableCellKind
}

// Alignment is a horizontal cell or text alignment.
// The zero value means "not specified".
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// ParseAlignment maps an external alignment attribute to an [Alignment].
// "auto" normalizes to left; anything unrecognized is [AlignNone],
// which renderers resolve to their configured default.
func ParseAlignment(s string) Alignment {
	switch s {
	case "left", "auto":
		return AlignLeft
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignNone
	}
}

// String returns the external name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

// Attrs holds the optional attributes of a [Token].
// Only the fields relevant to a token's kind are meaningful;
// the rest stay at their zero values.
type Attrs struct {
	// URL is the destination of a link or image.
	URL string
	// Title is the optional title of a link or image.
	Title string
	// Label is the reference label of a reference-style link or image.
	Label string
	// Info is the info string of a fenced code block
	// (conventionally a language identifier).
	Info string
	// Level is the heading level, 1 through 6.
	Level int
	// Start is the first marker number of an ordered list.
	Start int
	// Ordered reports whether a list is ordered.
	Ordered bool
	// Align is the declared alignment of a table cell.
	Align Alignment
	// Head reports whether a table cell belongs to the header row.
	Head bool
}

// A Token is one node of the Markdown abstract syntax tree.
// Tokens are owned by the caller;
// rendering and serialization read them and never mutate them.
type Token struct {
	Kind     Kind
	Children []Token
	Raw      string
	Attrs    Attrs
}

// HeadingLevel returns the token's heading level clamped to 1 through 6.
func (t Token) HeadingLevel() int {
	switch {
	case t.Attrs.Level < 1:
		return 1
	case t.Attrs.Level > 6:
		return 6
	default:
		return t.Attrs.Level
	}
}

// ListStart returns the first marker number of an ordered list,
// defaulting to 1 when the attribute is absent or nonsense.
func (t Token) ListStart() int {
	if t.Attrs.Start < 1 {
		return 1
	}
	return t.Attrs.Start
}
