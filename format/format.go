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

// Package format serializes a token tree back into Markdown text
// that reparses to a semantically equal tree.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"zombiezen.com/go/mdvisual"
)

// Serialize returns the Markdown text for a block token stream.
// Block results are joined with one blank line;
// unknown block kinds serialize to nothing and are dropped.
// refs may be nil when no links resolve through references.
func Serialize(tokens []mdvisual.Token, refs mdvisual.ReferenceMap) string {
	s := newSerializer(refs)
	s.collectSharedURLs(tokens)
	return s.document(tokens)
}

// Write serializes tokens as Markdown to w.
func Write(w io.Writer, tokens []mdvisual.Token, refs mdvisual.ReferenceMap) error {
	if _, err := io.WriteString(w, Serialize(tokens, refs)); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

type serializer struct {
	refs mdvisual.ReferenceMap

	// urlCount holds per-destination link/image occurrence counts from
	// the pre-pass. Destinations that occur more than once serialize as
	// reference-style links with one shared definition.
	urlCount map[string]int
	// labels assigns each shared destination its stable label.
	labels map[string]string
	// defs lists collected definitions in first-use order.
	defs []linkDef
}

type linkDef struct {
	label        string
	destination  string
	title        string
	titlePresent bool
}

func newSerializer(refs mdvisual.ReferenceMap) *serializer {
	return &serializer{
		refs:     refs,
		urlCount: make(map[string]int),
		labels:   make(map[string]string),
	}
}

// collectSharedURLs counts resolved link and image destinations
// so that repeated destinations get reference-style output.
func (s *serializer) collectSharedURLs(tokens []mdvisual.Token) {
	mdvisual.Walk(tokens, &mdvisual.WalkOptions{
		Pre: func(c *mdvisual.Cursor) bool {
			tok := c.Token()
			if tok.Kind == mdvisual.LinkKind || tok.Kind == mdvisual.ImageKind {
				def := s.resolve(*tok)
				if def.Destination != "" {
					s.urlCount[def.Destination]++
				}
			}
			return true
		},
	})
}

// resolve determines a link token's destination and title,
// falling back through the reference table the same way the renderer does.
// A token that resolves nowhere gets an empty destination (never an error).
func (s *serializer) resolve(tok mdvisual.Token) mdvisual.LinkDefinition {
	if tok.Attrs.URL != "" {
		return mdvisual.LinkDefinition{
			Destination:  tok.Attrs.URL,
			Title:        tok.Attrs.Title,
			TitlePresent: tok.Attrs.Title != "",
		}
	}
	def, _ := s.refs.Resolve(tok.Attrs.Label, rawText(tok.Children))
	return def
}

func (s *serializer) document(tokens []mdvisual.Token) string {
	var blocks []string
	for _, tok := range tokens {
		if text, ok := s.block(tok); ok {
			blocks = append(blocks, text)
		}
	}
	for _, def := range s.defs {
		line := "[" + def.label + "]: " + def.destination
		if def.titlePresent {
			line += ` "` + def.title + `"`
		}
		blocks = append(blocks, line)
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// block serializes one block token.
// The second result distinguishes "no output, omit entirely"
// (blank lines, unknown kinds) from a legitimately empty block,
// so omitted tokens never pad the output with extra blank lines.
func (s *serializer) block(tok mdvisual.Token) (string, bool) {
	switch tok.Kind {
	case mdvisual.ParagraphKind, mdvisual.BlockTextKind:
		return s.inline(tok.Children), true
	case mdvisual.HeadingKind:
		return strings.Repeat("#", tok.HeadingLevel()) + " " + s.inline(tok.Children), true
	case mdvisual.BlockCodeKind:
		return s.codeBlock(tok), true
	case mdvisual.BlockQuoteKind:
		return s.blockQuote(tok), true
	case mdvisual.ListKind:
		return strings.Join(s.list(tok, 0), "\n"), true
	case mdvisual.TableKind:
		return s.table(tok), true
	case mdvisual.ThematicBreakKind:
		return "---", true
	case mdvisual.BlankLineKind:
		return "", false
	default:
		return "", false
	}
}

// codeBlock emits a fenced code block whose fence is strictly longer
// than any backtick run inside the content,
// so the fence can never be confused with the code itself.
// The info string, if any, is appended to the opening fence with no space.
func (s *serializer) codeBlock(tok mdvisual.Token) string {
	fence := strings.Repeat("`", fenceLength(tok.Raw))
	content := tok.Raw
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return fence + tok.Attrs.Info + "\n" + content + fence
}

// fenceLength returns one more than the longest contiguous backtick run
// in content, with a minimum of three.
func fenceLength(content string) int {
	longest, run := 0, 0
	for i := 0; i < len(content); i++ {
		if content[i] == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest+1 < 3 {
		return 3
	}
	return longest + 1
}

func (s *serializer) blockQuote(tok mdvisual.Token) string {
	var inner []string
	for _, child := range tok.Children {
		if text, ok := s.block(child); ok {
			inner = append(inner, text)
		}
	}
	lines := strings.Split(strings.Join(inner, "\n\n"), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}
	return strings.Join(lines, "\n")
}

// list emits one line per item,
// with nested lists indented by two spaces per level.
func (s *serializer) list(tok mdvisual.Token, depth int) []string {
	indent := strings.Repeat("  ", depth)
	start := tok.ListStart()
	var lines []string
	index := 0
	for _, item := range tok.Children {
		if item.Kind != mdvisual.ListItemKind {
			continue
		}
		var marker string
		if tok.Attrs.Ordered {
			marker = strconv.Itoa(start+index) + "."
		} else {
			marker = "-"
		}
		index++

		var inlineParts []string
		var nested []string
		for _, child := range item.Children {
			switch child.Kind {
			case mdvisual.ListKind:
				nested = append(nested, s.list(child, depth+1)...)
			case mdvisual.ParagraphKind, mdvisual.BlockTextKind:
				inlineParts = append(inlineParts, s.inline(child.Children))
			case mdvisual.BlankLineKind:
				// Omit.
			default:
				if text, ok := s.block(child); ok {
					for _, line := range strings.Split(text, "\n") {
						nested = append(nested, indent+"  "+line)
					}
				}
			}
		}
		lines = append(lines, indent+marker+" "+strings.Join(inlineParts, " "))
		lines = append(lines, nested...)
	}
	return lines
}

// table emits a pipe table:
// header row, alignment-marker separator row, then body rows.
func (s *serializer) table(tok mdvisual.Token) string {
	var head, body []mdvisual.Token
	for _, child := range tok.Children {
		switch child.Kind {
		case mdvisual.TableHeadKind:
			head = tableRows(child)
		case mdvisual.TableBodyKind:
			body = tableRows(child)
		}
	}
	if len(head) == 0 && len(body) == 0 {
		return ""
	}

	var firstRow mdvisual.Token
	if len(head) > 0 {
		firstRow = head[0]
	} else {
		firstRow = body[0]
	}
	columns := len(firstRow.Children)

	var lines []string
	for _, row := range head {
		lines = append(lines, s.tableRow(row, columns))
	}
	markers := make([]string, columns)
	for i := 0; i < columns; i++ {
		var align mdvisual.Alignment
		if i < len(firstRow.Children) {
			align = firstRow.Children[i].Attrs.Align
		}
		markers[i] = alignmentMarker(align)
	}
	lines = append(lines, "| "+strings.Join(markers, " | ")+" |")
	for _, row := range body {
		lines = append(lines, s.tableRow(row, columns))
	}
	return strings.Join(lines, "\n")
}

// tableRows tolerates both section shapes the renderer does:
// cells wrapped in row tokens, or cells attached to the section directly.
func tableRows(section mdvisual.Token) []mdvisual.Token {
	if len(section.Children) == 0 {
		return nil
	}
	if section.Children[0].Kind == mdvisual.TableCellKind {
		return []mdvisual.Token{{Kind: mdvisual.TableRowKind, Children: section.Children}}
	}
	var rows []mdvisual.Token
	for _, child := range section.Children {
		if child.Kind == mdvisual.TableRowKind {
			rows = append(rows, child)
		}
	}
	return rows
}

func (s *serializer) tableRow(row mdvisual.Token, columns int) string {
	cells := make([]string, columns)
	for i := 0; i < columns; i++ {
		if i < len(row.Children) {
			cells[i] = s.inline(row.Children[i].Children)
		}
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

func alignmentMarker(align mdvisual.Alignment) string {
	switch align {
	case mdvisual.AlignLeft:
		return ":---"
	case mdvisual.AlignCenter:
		return ":---:"
	case mdvisual.AlignRight:
		return "---:"
	default:
		return "---"
	}
}

// inline serializes a run of inline tokens.
// Unknown kinds serialize to nothing, mirroring the renderer's fallback.
func (s *serializer) inline(tokens []mdvisual.Token) string {
	sb := new(strings.Builder)
	for _, tok := range tokens {
		s.inlineToken(sb, tok)
	}
	return sb.String()
}

func (s *serializer) inlineToken(sb *strings.Builder, tok mdvisual.Token) {
	switch tok.Kind {
	case mdvisual.TextKind:
		sb.WriteString(tok.Raw)
	case mdvisual.StrongKind:
		sb.WriteString("**")
		sb.WriteString(s.inline(tok.Children))
		sb.WriteString("**")
	case mdvisual.EmphasisKind:
		sb.WriteString("*")
		sb.WriteString(s.inline(tok.Children))
		sb.WriteString("*")
	case mdvisual.StrikethroughKind:
		sb.WriteString("~~")
		sb.WriteString(s.inline(tok.Children))
		sb.WriteString("~~")
	case mdvisual.CodeSpanKind:
		sb.WriteString(codeSpan(tok.Raw))
	case mdvisual.LinkKind:
		s.linkOrImage(sb, tok, false)
	case mdvisual.ImageKind:
		s.linkOrImage(sb, tok, true)
	case mdvisual.SoftBreakKind:
		sb.WriteString(" ")
	case mdvisual.LineBreakKind:
		sb.WriteString("\\\n")
	case mdvisual.InlineHTMLKind:
		sb.WriteString(tok.Raw)
	}
}

// codeSpan picks a delimiter longer than any backtick run in the
// content, padding with spaces when the content begins or ends with a
// backtick so the delimiter stays unambiguous.
func codeSpan(content string) string {
	longest, run := 0, 0
	for i := 0; i < len(content); i++ {
		if content[i] == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	delim := strings.Repeat("`", longest+1)
	pad := ""
	if strings.HasPrefix(content, "`") || strings.HasSuffix(content, "`") {
		pad = " "
	}
	return delim + pad + content + pad + delim
}

// linkOrImage serializes a link or image.
// Destinations that occur more than once in the document come out
// reference-style with a stable per-destination label,
// and exactly one definition is collected for the label
// no matter how many links share it.
func (s *serializer) linkOrImage(sb *strings.Builder, tok mdvisual.Token, image bool) {
	def := s.resolve(tok)
	if image {
		sb.WriteString("!")
	}
	sb.WriteString("[")
	sb.WriteString(s.inline(tok.Children))
	sb.WriteString("]")

	if def.Destination != "" && s.urlCount[def.Destination] > 1 {
		sb.WriteString("[")
		sb.WriteString(s.labelFor(tok, def))
		sb.WriteString("]")
		return
	}

	sb.WriteString("(")
	sb.WriteString(def.Destination)
	if def.TitlePresent {
		sb.WriteString(` "`)
		sb.WriteString(def.Title)
		sb.WriteString(`"`)
	}
	sb.WriteString(")")
}

// labelFor returns the label assigned to a destination,
// minting one on first use.
// The token's own label is preferred when it is free;
// otherwise labels are numbered in first-use order.
func (s *serializer) labelFor(tok mdvisual.Token, def mdvisual.LinkDefinition) string {
	if label, ok := s.labels[def.Destination]; ok {
		return label
	}
	label := mdvisual.NormalizeLabel(tok.Attrs.Label)
	if label == "" || s.labelTaken(label) {
		label = strconv.Itoa(len(s.defs) + 1)
		for s.labelTaken(label) {
			label += "x"
		}
	}
	s.labels[def.Destination] = label
	s.defs = append(s.defs, linkDef{
		label:        label,
		destination:  def.Destination,
		title:        def.Title,
		titlePresent: def.TitlePresent,
	})
	return label
}

func (s *serializer) labelTaken(label string) bool {
	for _, def := range s.defs {
		if def.label == label {
			return true
		}
	}
	return false
}

// rawText flattens the unstyled text of inline tokens,
// used as the implicit reference label of a shortcut link.
func rawText(tokens []mdvisual.Token) string {
	sb := new(strings.Builder)
	for _, tok := range tokens {
		switch tok.Kind {
		case mdvisual.SoftBreakKind, mdvisual.LineBreakKind:
			sb.WriteString(" ")
		default:
			sb.WriteString(tok.Raw)
			sb.WriteString(rawText(tok.Children))
		}
	}
	return sb.String()
}
