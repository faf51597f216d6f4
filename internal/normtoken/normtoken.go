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

// Package normtoken canonicalizes token trees
// so that cosmetically different but semantically equal trees
// compare equal.
// It exists for round-trip tests:
// normalize the original tree and the tree reparsed from serialized
// output, then diff.
// It is not part of the production render or serialize path.
package normtoken

import (
	"zombiezen.com/go/mdvisual"
)

// Normalize returns a canonical copy of a token forest:
//
//   - blank_line tokens are dropped
//   - softbreaks become literal one-space text tokens
//   - adjacent text tokens (including converted softbreaks) merge
//   - block_text collapses to paragraph
//   - table sections take the row-wrapped shape
//   - reference labels and titles are cleared once a link has resolved,
//     along with other non-semantic attributes
//
// The input is never mutated.
func Normalize(tokens []mdvisual.Token) []mdvisual.Token {
	out := make([]mdvisual.Token, 0, len(tokens))
	for _, tok := range tokens {
		norm, ok := normalizeToken(tok)
		if !ok {
			continue
		}
		out = append(out, norm)
	}
	return mergeText(out)
}

func normalizeToken(tok mdvisual.Token) (mdvisual.Token, bool) {
	switch tok.Kind {
	case mdvisual.BlankLineKind:
		return mdvisual.Token{}, false
	case mdvisual.SoftBreakKind:
		return mdvisual.Token{Kind: mdvisual.TextKind, Raw: " "}, true
	case mdvisual.BlockTextKind:
		tok.Kind = mdvisual.ParagraphKind
	case mdvisual.TableHeadKind, mdvisual.TableBodyKind:
		tok = wrapSectionRows(tok)
	}

	norm := mdvisual.Token{
		Kind:     tok.Kind,
		Raw:      tok.Raw,
		Attrs:    semanticAttrs(tok),
		Children: Normalize(tok.Children),
	}
	if len(norm.Children) == 0 {
		norm.Children = nil
	}
	return norm, true
}

// semanticAttrs keeps only the attributes that change meaning.
// Labels are cosmetic once the destination is known:
// "[a][x]" and "[a](url)" must compare equal when x resolves to url.
func semanticAttrs(tok mdvisual.Token) mdvisual.Attrs {
	attrs := mdvisual.Attrs{
		URL:   tok.Attrs.URL,
		Title: tok.Attrs.Title,
		Info:  tok.Attrs.Info,
		Align: tok.Attrs.Align,
	}
	if tok.Attrs.URL == "" {
		attrs.Label = mdvisual.NormalizeLabel(tok.Attrs.Label)
	}
	switch tok.Kind {
	case mdvisual.HeadingKind:
		attrs.Level = tok.HeadingLevel()
	case mdvisual.ListKind:
		attrs.Ordered = tok.Attrs.Ordered
		if tok.Attrs.Ordered {
			attrs.Start = tok.ListStart()
		}
	}
	return attrs
}

// wrapSectionRows converts the cells-attached-directly section shape
// into the row-wrapped shape, the canonical one.
func wrapSectionRows(section mdvisual.Token) mdvisual.Token {
	if len(section.Children) == 0 || section.Children[0].Kind != mdvisual.TableCellKind {
		return section
	}
	return mdvisual.Token{
		Kind: section.Kind,
		Children: []mdvisual.Token{{
			Kind:     mdvisual.TableRowKind,
			Children: section.Children,
		}},
	}
}

// mergeText joins runs of adjacent plain text tokens,
// which tokenizer quirks routinely split.
func mergeText(tokens []mdvisual.Token) []mdvisual.Token {
	out := tokens[:0]
	for _, tok := range tokens {
		if tok.Kind == mdvisual.TextKind && len(out) > 0 {
			last := &out[len(out)-1]
			if last.Kind == mdvisual.TextKind {
				last.Raw += tok.Raw
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}
