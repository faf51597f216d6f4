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
	"testing"
)

func testStyle() Style {
	s := DefaultStyle()
	s.CodeFontName = "Mono"
	s.LinkColor = "#0000ff"
	return s
}

func TestRenderInline(t *testing.T) {
	unstyled := testStyle()
	unstyled.LinkStyle = LinkUnstyled

	tests := []struct {
		name   string
		tokens []Token
		style  Style
		refs   ReferenceMap
		want   string
	}{
		{
			name:   "Text",
			tokens: []Token{{Kind: TextKind, Raw: "a [b] & c"}},
			want:   "a &bl;b&br; &amp; c",
		},
		{
			name: "Strong",
			tokens: []Token{{
				Kind:     StrongKind,
				Children: []Token{{Kind: TextKind, Raw: "x"}},
			}},
			want: "[b]x[/b]",
		},
		{
			name: "Emphasis",
			tokens: []Token{{
				Kind:     EmphasisKind,
				Children: []Token{{Kind: TextKind, Raw: "x"}},
			}},
			want: "[i]x[/i]",
		},
		{
			name: "Strikethrough",
			tokens: []Token{{
				Kind:     StrikethroughKind,
				Children: []Token{{Kind: TextKind, Raw: "x"}},
			}},
			want: "[s]x[/s]",
		},
		{
			name: "NestedEmphasis",
			tokens: []Token{{
				Kind: StrongKind,
				Children: []Token{{
					Kind:     EmphasisKind,
					Children: []Token{{Kind: TextKind, Raw: "x"}},
				}},
			}},
			want: "[b][i]x[/i][/b]",
		},
		{
			name:   "CodeSpan",
			tokens: []Token{{Kind: CodeSpanKind, Raw: "a[0]"}},
			want:   "[font=Mono]a&bl;0&br;[/font]",
		},
		{
			name:   "SoftBreak",
			tokens: []Token{{Kind: TextKind, Raw: "a"}, {Kind: SoftBreakKind}, {Kind: TextKind, Raw: "b"}},
			want:   "a b",
		},
		{
			name:   "LineBreak",
			tokens: []Token{{Kind: TextKind, Raw: "a"}, {Kind: LineBreakKind}, {Kind: TextKind, Raw: "b"}},
			want:   "a\nb",
		},
		{
			name: "ImageRendersAltText",
			tokens: []Token{{
				Kind:     ImageKind,
				Children: []Token{{Kind: TextKind, Raw: "alt"}},
				Attrs:    Attrs{URL: "x.png"},
			}},
			want: "alt",
		},
		{
			name:   "InlineHTMLIsInert",
			tokens: []Token{{Kind: InlineHTMLKind, Raw: `<a href="x">`}},
			want:   "&amp;lt;a href=&amp;quot;x&amp;quot;&amp;gt;",
		},
		{
			name:   "UnknownKindFallsBackToRaw",
			tokens: []Token{{Kind: Kind(9999), Raw: "[raw]"}},
			want:   "&bl;raw&br;",
		},
		{
			name: "LinkUnstyled",
			tokens: []Token{{
				Kind:     LinkKind,
				Children: []Token{{Kind: TextKind, Raw: "go"}},
				Attrs:    Attrs{URL: "https://go.dev"},
			}},
			style: unstyled,
			want:  "[ref=https://go.dev]go[/ref]",
		},
		{
			name: "LinkStyled",
			tokens: []Token{{
				Kind:     LinkKind,
				Children: []Token{{Kind: TextKind, Raw: "go"}},
				Attrs:    Attrs{URL: "https://go.dev"},
			}},
			want: "[ref=https://go.dev][color=#0000ff][u]go[/u][/color][/ref]",
		},
		{
			name: "ReferenceLinkByLabel",
			tokens: []Token{{
				Kind:     LinkKind,
				Children: []Token{{Kind: TextKind, Raw: "docs"}},
				Attrs:    Attrs{Label: "Home Page"},
			}},
			style: unstyled,
			refs:  ReferenceMap{"home page": {Destination: "https://example.com"}},
			want:  "[ref=https://example.com]docs[/ref]",
		},
		{
			name: "ReferenceLinkByImplicitLabel",
			tokens: []Token{{
				Kind:     LinkKind,
				Children: []Token{{Kind: TextKind, Raw: "docs"}},
			}},
			style: unstyled,
			refs:  ReferenceMap{"docs": {Destination: "https://example.com/docs"}},
			want:  "[ref=https://example.com/docs]docs[/ref]",
		},
		{
			name: "UnresolvedLinkGetsEmptyURL",
			tokens: []Token{{
				Kind:     LinkKind,
				Children: []Token{{Kind: TextKind, Raw: "nowhere"}},
			}},
			style: unstyled,
			want:  "[ref=]nowhere[/ref]",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			style := test.style
			if style == (Style{}) {
				style = testStyle()
			}
			got := RenderInline(test.tokens, style, test.refs)
			if got != test.want {
				t.Errorf("RenderInline(...) = %q; want %q", got, test.want)
			}
		})
	}
}

func TestLinkRefTagInjectionSafety(t *testing.T) {
	urls := []string{
		"",
		"https://example.com",
		"a]b",
		"[/ref][b]injected[/b][ref=",
		"]]]]][[[[",
		"[ref=x]",
		strings.Repeat("]", 100) + strings.Repeat("[", 100),
	}
	for _, url := range urls {
		tokens := []Token{{
			Kind:     LinkKind,
			Children: []Token{{Kind: TextKind, Raw: "text"}},
			Attrs:    Attrs{URL: url},
		}}
		got := RenderInline(tokens, testStyle(), nil)
		if n := strings.Count(got, "[ref="); n != 1 {
			t.Errorf("URL %q: markup %q contains %d opening ref tags; want 1", url, got, n)
		}
		if n := strings.Count(got, "[/ref]"); n != 1 {
			t.Errorf("URL %q: markup %q contains %d closing ref tags; want 1", url, got, n)
		}
	}
}
