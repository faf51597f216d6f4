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
	"strings"

	"go4.org/bytereplacer"
)

// RenderInline converts a sequence of inline tokens into one rich-text
// markup string using the given style and reference table.
// It is the same transformation [Render] applies to block content,
// exposed for hosts that need markup for a bare run of inlines.
func RenderInline(tokens []Token, style Style, refs ReferenceMap) string {
	rc := &renderContext{style: style, refs: refs}
	return rc.inline(tokens)
}

// inline renders inline tokens to a single markup string.
// Dispatch is a total switch over the closed [Kind] set;
// anything unrecognized falls back to escaping its raw text,
// so malformed input degrades instead of failing.
func (rc *renderContext) inline(tokens []Token) string {
	sb := new(strings.Builder)
	for i := range tokens {
		rc.inlineToken(sb, tokens[i])
	}
	return sb.String()
}

func (rc *renderContext) inlineToken(sb *strings.Builder, tok Token) {
	switch tok.Kind {
	case TextKind:
		sb.WriteString(Escape(tok.Raw))
	case StrongKind:
		sb.WriteString("[b]")
		sb.WriteString(rc.inline(tok.Children))
		sb.WriteString("[/b]")
	case EmphasisKind:
		sb.WriteString("[i]")
		sb.WriteString(rc.inline(tok.Children))
		sb.WriteString("[/i]")
	case StrikethroughKind:
		sb.WriteString("[s]")
		sb.WriteString(rc.inline(tok.Children))
		sb.WriteString("[/s]")
	case CodeSpanKind:
		sb.WriteString("[font=")
		sb.WriteString(rc.style.CodeFontName)
		sb.WriteString("]")
		sb.WriteString(Escape(tok.Raw))
		sb.WriteString("[/font]")
	case LinkKind:
		rc.link(sb, tok)
	case ImageKind:
		// In inline context an image renders as its alt text only;
		// block-level image handling is the block renderer's concern.
		sb.WriteString(rc.inline(tok.Children))
	case SoftBreakKind:
		sb.WriteString(" ")
	case LineBreakKind:
		sb.WriteString("\n")
	case InlineHTMLKind:
		sb.WriteString(escapeInlineHTML(tok.Raw))
	default:
		sb.WriteString(Escape(tok.Raw))
	}
}

// link emits a ref-tagged hyperlink.
// The URL comes from the token's attributes when present;
// otherwise it resolves through the reference table,
// using the link text as an implicit label when no explicit one exists.
// [EscapeURL] guarantees the emitted markup contains exactly one
// opening ref tag and one closing ref tag
// no matter what brackets the URL contains.
func (rc *renderContext) link(sb *strings.Builder, tok Token) {
	url := tok.Attrs.URL
	if url == "" {
		if def, ok := rc.refs.Resolve(tok.Attrs.Label, plainText(tok.Children)); ok {
			url = def.Destination
		}
	}
	sb.WriteString("[ref=")
	sb.WriteString(EscapeURL(url))
	sb.WriteString("]")
	styled := rc.style.LinkStyle == LinkStyled
	if styled {
		sb.WriteString("[color=")
		sb.WriteString(rc.style.LinkColor)
		sb.WriteString("][u]")
	}
	sb.WriteString(rc.inline(tok.Children))
	if styled {
		sb.WriteString("[/u][/color]")
	}
	sb.WriteString("[/ref]")
}

// htmlEntityEscaper neutralizes the characters that make raw HTML
// interpretable. '&' is deliberately absent:
// the markup escape pass that follows handles ampersands,
// and escaping them here would double-escape every entity produced.
var htmlEntityEscaper = bytereplacer.New(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeInlineHTML renders a raw HTML fragment as inert text.
// Two passes: HTML-entity-escape the angle brackets and quotes,
// then markup-escape the result,
// so the fragment can be interpreted neither as HTML by a downstream
// sanitizer nor as tags by the markup dialect.
func escapeInlineHTML(raw string) string {
	return Escape(string(htmlEntityEscaper.Replace([]byte(raw))))
}

// plainText flattens the unstyled text content of inline tokens,
// used as the implicit reference label of a shortcut link.
func plainText(tokens []Token) string {
	sb := new(strings.Builder)
	for _, tok := range tokens {
		switch tok.Kind {
		case SoftBreakKind, LineBreakKind:
			sb.WriteString(" ")
		default:
			sb.WriteString(tok.Raw)
			sb.WriteString(plainText(tok.Children))
		}
	}
	return sb.String()
}
