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

// Package parser converts Markdown text into the typed token form
// consumed by the mdvisual renderer and serializer.
// It is a boundary adapter over [goldmark] with the GFM extension:
// goldmark owns the grammar,
// and this package owns the translation of its loosely shaped AST
// into the closed [mdvisual.Kind] vocabulary.
//
// [goldmark]: https://github.com/yuin/goldmark
package parser

import (
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"zombiezen.com/go/mdvisual"
)

// markdownInstance is initialized once and reused.
// The parser configuration never changes and a goldmark Parser is safe
// to share; parsing creates per-call state via Parse(reader).
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func instance() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// Parse converts Markdown source into a block token stream
// and the document's reference table.
// goldmark resolves reference-style links while parsing,
// so every link token carries its destination directly
// and the returned map is empty;
// it is returned for interface symmetry with front ends
// that surface unresolved labels.
func Parse(source []byte) ([]mdvisual.Token, mdvisual.ReferenceMap) {
	document := instance().Parser().Parse(text.NewReader(source))
	c := &converter{source: source}
	return c.blocks(document), mdvisual.ReferenceMap{}
}

type converter struct {
	source []byte
}

func (c *converter) blocks(parent ast.Node) []mdvisual.Token {
	var out []mdvisual.Token
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		if tok, ok := c.block(child); ok {
			out = append(out, tok)
		}
	}
	return out
}

// block converts one goldmark block node.
// Kinds outside the token vocabulary report false and are dropped,
// which keeps the converter total.
func (c *converter) block(n ast.Node) (mdvisual.Token, bool) {
	switch n := n.(type) {
	case *ast.Paragraph:
		// goldmark consumes link reference definitions but leaves the
		// emptied paragraph in the tree; dropping childless paragraphs
		// here keeps those husks out of the token stream.
		children := c.inlines(n)
		if len(children) == 0 {
			return mdvisual.Token{}, false
		}
		return mdvisual.Token{
			Kind:     mdvisual.ParagraphKind,
			Children: children,
		}, true
	case *ast.TextBlock:
		children := c.inlines(n)
		if len(children) == 0 {
			return mdvisual.Token{}, false
		}
		return mdvisual.Token{
			Kind:     mdvisual.BlockTextKind,
			Children: children,
		}, true
	case *ast.Heading:
		return mdvisual.Token{
			Kind:     mdvisual.HeadingKind,
			Children: c.inlines(n),
			Attrs:    mdvisual.Attrs{Level: n.Level},
		}, true
	case *ast.FencedCodeBlock:
		return mdvisual.Token{
			Kind:  mdvisual.BlockCodeKind,
			Raw:   c.lines(n),
			Attrs: mdvisual.Attrs{Info: string(n.Language(c.source))},
		}, true
	case *ast.CodeBlock:
		return mdvisual.Token{
			Kind: mdvisual.BlockCodeKind,
			Raw:  c.lines(n),
		}, true
	case *ast.Blockquote:
		return mdvisual.Token{
			Kind:     mdvisual.BlockQuoteKind,
			Children: c.blocks(n),
		}, true
	case *ast.List:
		return c.list(n), true
	case *ast.ThematicBreak:
		return mdvisual.Token{Kind: mdvisual.ThematicBreakKind}, true
	case *ast.HTMLBlock:
		raw := c.lines(n)
		if n.HasClosure() {
			raw += string(n.ClosureLine.Value(c.source))
		}
		return mdvisual.Token{
			Kind: mdvisual.ParagraphKind,
			Children: []mdvisual.Token{{
				Kind: mdvisual.InlineHTMLKind,
				Raw:  strings.TrimSuffix(raw, "\n"),
			}},
		}, true
	case *extast.Table:
		return c.table(n), true
	default:
		return mdvisual.Token{}, false
	}
}

func (c *converter) list(n *ast.List) mdvisual.Token {
	attrs := mdvisual.Attrs{Ordered: n.IsOrdered()}
	if n.IsOrdered() {
		attrs.Start = n.Start
	}
	var items []mdvisual.Token
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if _, ok := child.(*ast.ListItem); !ok {
			continue
		}
		items = append(items, mdvisual.Token{
			Kind:     mdvisual.ListItemKind,
			Children: c.blocks(child),
		})
	}
	return mdvisual.Token{
		Kind:     mdvisual.ListKind,
		Children: items,
		Attrs:    attrs,
	}
}

func (c *converter) table(n *extast.Table) mdvisual.Token {
	var headRows, bodyRows []mdvisual.Token
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.(type) {
		case *extast.TableHeader:
			headRows = append(headRows, c.tableRow(child, true))
		case *extast.TableRow:
			bodyRows = append(bodyRows, c.tableRow(child, false))
		}
	}
	var sections []mdvisual.Token
	if len(headRows) > 0 {
		sections = append(sections, mdvisual.Token{
			Kind:     mdvisual.TableHeadKind,
			Children: headRows,
		})
	}
	if len(bodyRows) > 0 {
		sections = append(sections, mdvisual.Token{
			Kind:     mdvisual.TableBodyKind,
			Children: bodyRows,
		})
	}
	return mdvisual.Token{Kind: mdvisual.TableKind, Children: sections}
}

func (c *converter) tableRow(row ast.Node, head bool) mdvisual.Token {
	var cells []mdvisual.Token
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		tc, ok := cell.(*extast.TableCell)
		if !ok {
			continue
		}
		cells = append(cells, mdvisual.Token{
			Kind:     mdvisual.TableCellKind,
			Children: c.inlines(tc),
			Attrs: mdvisual.Attrs{
				Align: convertAlignment(tc.Alignment),
				Head:  head,
			},
		})
	}
	return mdvisual.Token{Kind: mdvisual.TableRowKind, Children: cells}
}

func convertAlignment(a extast.Alignment) mdvisual.Alignment {
	switch a {
	case extast.AlignLeft:
		return mdvisual.AlignLeft
	case extast.AlignCenter:
		return mdvisual.AlignCenter
	case extast.AlignRight:
		return mdvisual.AlignRight
	default:
		return mdvisual.AlignNone
	}
}

// inlines converts a block node's inline children,
// merging adjacent plain text tokens:
// goldmark's inline scanners (linkify in particular) split text runs
// at word boundaries that carry no meaning in the token stream.
func (c *converter) inlines(parent ast.Node) []mdvisual.Token {
	var out []mdvisual.Token
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		for _, tok := range c.inline(child) {
			if tok.Kind == mdvisual.TextKind && len(out) > 0 {
				if last := &out[len(out)-1]; last.Kind == mdvisual.TextKind {
					last.Raw += tok.Raw
					continue
				}
			}
			out = append(out, tok)
		}
	}
	return out
}

// inline converts one goldmark inline node.
// It returns a slice because a single goldmark text node can expand to
// up to two tokens: its text plus a trailing line break token.
func (c *converter) inline(n ast.Node) []mdvisual.Token {
	switch n := n.(type) {
	case *ast.Text:
		var out []mdvisual.Token
		if value := n.Segment.Value(c.source); len(value) > 0 {
			out = append(out, mdvisual.Token{
				Kind: mdvisual.TextKind,
				Raw:  string(value),
			})
		}
		switch {
		case n.HardLineBreak():
			out = append(out, mdvisual.Token{Kind: mdvisual.LineBreakKind})
		case n.SoftLineBreak():
			out = append(out, mdvisual.Token{Kind: mdvisual.SoftBreakKind})
		}
		return out
	case *ast.String:
		return []mdvisual.Token{{Kind: mdvisual.TextKind, Raw: string(n.Value)}}
	case *ast.Emphasis:
		kind := mdvisual.EmphasisKind
		if n.Level >= 2 {
			kind = mdvisual.StrongKind
		}
		return []mdvisual.Token{{Kind: kind, Children: c.inlines(n)}}
	case *extast.Strikethrough:
		return []mdvisual.Token{{
			Kind:     mdvisual.StrikethroughKind,
			Children: c.inlines(n),
		}}
	case *ast.CodeSpan:
		return []mdvisual.Token{{
			Kind: mdvisual.CodeSpanKind,
			Raw:  c.codeSpanText(n),
		}}
	case *ast.Link:
		return []mdvisual.Token{{
			Kind:     mdvisual.LinkKind,
			Children: c.inlines(n),
			Attrs: mdvisual.Attrs{
				URL:   string(n.Destination),
				Title: string(n.Title),
			},
		}}
	case *ast.AutoLink:
		url := string(n.URL(c.source))
		destination := url
		if n.AutoLinkType == ast.AutoLinkEmail {
			destination = "mailto:" + url
		}
		return []mdvisual.Token{{
			Kind: mdvisual.LinkKind,
			Children: []mdvisual.Token{{
				Kind: mdvisual.TextKind,
				Raw:  url,
			}},
			Attrs: mdvisual.Attrs{URL: destination},
		}}
	case *ast.Image:
		return []mdvisual.Token{{
			Kind:     mdvisual.ImageKind,
			Children: c.inlines(n),
			Attrs: mdvisual.Attrs{
				URL:   string(n.Destination),
				Title: string(n.Title),
			},
		}}
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(c.source))
		}
		return []mdvisual.Token{{
			Kind: mdvisual.InlineHTMLKind,
			Raw:  sb.String(),
		}}
	default:
		return nil
	}
}

// codeSpanText joins the text segments of a code span,
// which goldmark splits across child nodes.
func (c *converter) codeSpanText(n *ast.CodeSpan) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch child := child.(type) {
		case *ast.Text:
			sb.Write(child.Segment.Value(c.source))
		case *ast.String:
			sb.Write(child.Value)
		}
	}
	return sb.String()
}

// lines joins the source lines covered by a block node.
// Segment.Value has a pointer receiver,
// so each segment is bound to a local before the call.
func (c *converter) lines(n ast.Node) string {
	var sb strings.Builder
	l := n.Lines()
	for i := 0; i < l.Len(); i++ {
		seg := l.At(i)
		sb.Write(seg.Value(c.source))
	}
	return sb.String()
}
