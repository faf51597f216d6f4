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

import (
	"strconv"
	"strings"
)

// Render converts a block token stream into a visual node tree.
// It is a pure function of its arguments:
// it reads the tokens without mutating them,
// keeps all walk state in a context local to the call,
// and so is safe to invoke from any number of goroutines at once.
// Hosts that coalesce repeated render triggers may call it
// at most once per batch without losing anything.
//
// refs may be nil when the document has no reference-style links.
func Render(tokens []Token, style Style, refs ReferenceMap) []Node {
	rc := &renderContext{style: style, refs: refs}
	return rc.blocks(tokens)
}

// blocks renders a run of sibling block tokens.
func (rc *renderContext) blocks(tokens []Token) []Node {
	nodes := make([]Node, 0, len(tokens))
	for i := range tokens {
		if n := rc.block(tokens[i]); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// block renders one block token, or returns nil for tokens that
// produce no output (blank lines, unknown kinds).
func (rc *renderContext) block(tok Token) Node {
	switch tok.Kind {
	case ParagraphKind, BlockTextKind:
		if img, ok := soleImage(tok); ok {
			return rc.image(img)
		}
		return rc.text(rc.inline(tok.Children))
	case HeadingKind:
		return rc.heading(tok)
	case BlockCodeKind:
		return rc.blockCode(tok)
	case BlockQuoteKind:
		return rc.blockQuote(tok)
	case ListKind:
		return rc.list(tok)
	case TableKind:
		return rc.table(tok)
	case ThematicBreakKind:
		return RuleNode{}
	case ImageKind:
		return rc.image(tok)
	case BlankLineKind:
		// Spacing between blocks belongs to the host layout.
		return nil
	default:
		return nil
	}
}

func (rc *renderContext) heading(tok Token) Node {
	n := rc.text(rc.inline(tok.Children))
	n.FontSize = rc.style.HeadingSize(tok.HeadingLevel())
	n.Bold = true
	return n
}

// blockCode renders a code block with the dedicated code font on a
// fixed background, regardless of the body settings.
// The content goes through the markup escaper only:
// code is displayed verbatim, not interpreted as HTML.
func (rc *renderContext) blockCode(tok Token) Node {
	raw := strings.TrimSuffix(tok.Raw, "\n")
	language := ""
	if fields := strings.Fields(tok.Attrs.Info); len(fields) > 0 {
		language = fields[0]
	}
	text := TextNode{
		Markup:       Escape(raw),
		FontName:     rc.style.CodeFontName,
		FontSize:     rc.style.BaseFontSize,
		Color:        rc.style.BodyColor,
		Background:   rc.style.CodeBackgroundColor,
		LineHeight:   rc.style.LineHeight,
		Align:        AlignLeft,
		VAlign:       VAlignTop,
		Width:        rc.style.TextWidth,
		CodeLanguage: language,
		Monospace:    true,
	}
	return BoxNode{
		Vertical: true,
		Children: []Node{text},
		Padding:  Insets{Left: 10, Top: 10, Right: 10, Bottom: 10},
	}
}

// blockQuote indents its children one step.
// Block quotes nest recursively, so descent goes through the guard.
func (rc *renderContext) blockQuote(tok Token) Node {
	if !rc.enter() {
		defer rc.exit()
		return rc.truncated()
	}
	defer rc.exit()
	return BoxNode{
		Vertical: true,
		Children: rc.blocks(tok.Children),
		Padding:  Insets{Left: listIndentUnit},
	}
}

// image renders a block-level image.
// The host performs the actual fetch; alt text travels along for
// hosts that cannot display the source.
func (rc *renderContext) image(tok Token) Node {
	return ImageNode{
		Source:  tok.Attrs.URL,
		AltText: plainText(tok.Children),
	}
}

// list renders a list token as a vertical container of item rows.
// Each row pairs a marker with the item's content;
// the marker is right-aligned and top-aligned
// so it lines up with the first line of arbitrarily tall content.
// Indentation grows with list depth on the leading edge only,
// and bottom spacing is added only at the top level
// so nested lists do not compound gaps.
func (rc *renderContext) list(tok Token) Node {
	if !rc.enter() {
		defer rc.exit()
		return rc.truncated()
	}
	defer rc.exit()

	level := listLevel{ordered: tok.Attrs.Ordered, start: tok.ListStart()}
	rc.lists = append(rc.lists, level)
	defer func() {
		rc.lists = rc.lists[:len(rc.lists)-1]
	}()
	listDepth := len(rc.lists)

	rows := make([]Node, 0, len(tok.Children))
	itemIndex := 0
	for i := range tok.Children {
		item := tok.Children[i]
		if item.Kind != ListItemKind {
			continue
		}
		rows = append(rows, rc.listItem(item, itemIndex))
		itemIndex++
	}

	padding := Insets{Left: float64(listDepth * listIndentUnit)}
	if listDepth == 1 {
		padding.Bottom = listBottomSpacing
	}
	return BoxNode{
		Vertical: true,
		Children: rows,
		Padding:  padding,
	}
}

func (rc *renderContext) listItem(item Token, index int) Node {
	top := rc.lists[len(rc.lists)-1]
	var markerText string
	if top.ordered {
		markerText = strconv.Itoa(top.start+index) + "."
	} else {
		markerText = "•"
	}
	marker := TextNode{
		Markup:     Escape(markerText),
		FontName:   rc.style.BodyFontName,
		FontSize:   rc.style.BaseFontSize,
		Color:      rc.style.BodyColor,
		LineHeight: rc.style.LineHeight,
		Align:      AlignRight,
		VAlign:     VAlignTop,
	}
	content := BoxNode{
		Vertical: true,
		Children: rc.blocks(item.Children),
	}
	return BoxNode{
		Children: []Node{marker, content},
	}
}

// soleImage reports whether a paragraph consists of exactly one image,
// in which case the image is promoted to a block-level node
// instead of collapsing to alt text.
func soleImage(tok Token) (Token, bool) {
	if len(tok.Children) == 1 && tok.Children[0].Kind == ImageKind {
		return tok.Children[0], true
	}
	return Token{}, false
}
