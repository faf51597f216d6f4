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

package normtoken

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"zombiezen.com/go/mdvisual"
)

func text(s string) mdvisual.Token {
	return mdvisual.Token{Kind: mdvisual.TextKind, Raw: s}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		tokens []mdvisual.Token
		want   []mdvisual.Token
	}{
		{
			name: "BlankLinesDropped",
			tokens: []mdvisual.Token{
				{Kind: mdvisual.ParagraphKind, Children: []mdvisual.Token{text("a")}},
				{Kind: mdvisual.BlankLineKind},
				{Kind: mdvisual.ParagraphKind, Children: []mdvisual.Token{text("b")}},
			},
			want: []mdvisual.Token{
				{Kind: mdvisual.ParagraphKind, Children: []mdvisual.Token{text("a")}},
				{Kind: mdvisual.ParagraphKind, Children: []mdvisual.Token{text("b")}},
			},
		},
		{
			name: "SoftBreakMergesIntoText",
			tokens: []mdvisual.Token{{
				Kind: mdvisual.ParagraphKind,
				Children: []mdvisual.Token{
					text("one"),
					{Kind: mdvisual.SoftBreakKind},
					text("two"),
				},
			}},
			want: []mdvisual.Token{{
				Kind:     mdvisual.ParagraphKind,
				Children: []mdvisual.Token{text("one two")},
			}},
		},
		{
			name: "HardBreakSplitsText",
			tokens: []mdvisual.Token{{
				Kind: mdvisual.ParagraphKind,
				Children: []mdvisual.Token{
					text("one"),
					{Kind: mdvisual.LineBreakKind},
					text("two"),
				},
			}},
			want: []mdvisual.Token{{
				Kind: mdvisual.ParagraphKind,
				Children: []mdvisual.Token{
					text("one"),
					{Kind: mdvisual.LineBreakKind},
					text("two"),
				},
			}},
		},
		{
			name: "BlockTextBecomesParagraph",
			tokens: []mdvisual.Token{{
				Kind:     mdvisual.BlockTextKind,
				Children: []mdvisual.Token{text("tight")},
			}},
			want: []mdvisual.Token{{
				Kind:     mdvisual.ParagraphKind,
				Children: []mdvisual.Token{text("tight")},
			}},
		},
		{
			name: "SectionCellsGetRowWrapped",
			tokens: []mdvisual.Token{{
				Kind: mdvisual.TableHeadKind,
				Children: []mdvisual.Token{
					{Kind: mdvisual.TableCellKind, Children: []mdvisual.Token{text("a")}, Attrs: mdvisual.Attrs{Head: true}},
					{Kind: mdvisual.TableCellKind, Children: []mdvisual.Token{text("b")}, Attrs: mdvisual.Attrs{Head: true}},
				},
			}},
			want: []mdvisual.Token{{
				Kind: mdvisual.TableHeadKind,
				Children: []mdvisual.Token{{
					Kind: mdvisual.TableRowKind,
					Children: []mdvisual.Token{
						{Kind: mdvisual.TableCellKind, Children: []mdvisual.Token{text("a")}},
						{Kind: mdvisual.TableCellKind, Children: []mdvisual.Token{text("b")}},
					},
				}},
			}},
		},
		{
			name: "RowWrappedSectionUnchanged",
			tokens: []mdvisual.Token{{
				Kind: mdvisual.TableBodyKind,
				Children: []mdvisual.Token{{
					Kind: mdvisual.TableRowKind,
					Children: []mdvisual.Token{
						{Kind: mdvisual.TableCellKind, Children: []mdvisual.Token{text("x")}},
					},
				}},
			}},
			want: []mdvisual.Token{{
				Kind: mdvisual.TableBodyKind,
				Children: []mdvisual.Token{{
					Kind: mdvisual.TableRowKind,
					Children: []mdvisual.Token{
						{Kind: mdvisual.TableCellKind, Children: []mdvisual.Token{text("x")}},
					},
				}},
			}},
		},
		{
			name: "LabelClearedWhenResolved",
			tokens: []mdvisual.Token{{
				Kind:     mdvisual.LinkKind,
				Children: []mdvisual.Token{text("docs")},
				Attrs:    mdvisual.Attrs{URL: "https://example.com", Label: "D"},
			}},
			want: []mdvisual.Token{{
				Kind:     mdvisual.LinkKind,
				Children: []mdvisual.Token{text("docs")},
				Attrs:    mdvisual.Attrs{URL: "https://example.com"},
			}},
		},
		{
			name: "UnresolvedLabelNormalized",
			tokens: []mdvisual.Token{{
				Kind:     mdvisual.LinkKind,
				Children: []mdvisual.Token{text("docs")},
				Attrs:    mdvisual.Attrs{Label: "  The\tDocs "},
			}},
			want: []mdvisual.Token{{
				Kind:     mdvisual.LinkKind,
				Children: []mdvisual.Token{text("docs")},
				Attrs:    mdvisual.Attrs{Label: "the docs"},
			}},
		},
		{
			name: "StylingAttrsDropped",
			tokens: []mdvisual.Token{{
				Kind:     mdvisual.TableCellKind,
				Children: []mdvisual.Token{text("h")},
				Attrs:    mdvisual.Attrs{Align: mdvisual.AlignRight, Head: true},
			}},
			want: []mdvisual.Token{{
				Kind:     mdvisual.TableCellKind,
				Children: []mdvisual.Token{text("h")},
				Attrs:    mdvisual.Attrs{Align: mdvisual.AlignRight},
			}},
		},
		{
			name: "ListAttrsKept",
			tokens: []mdvisual.Token{{
				Kind:  mdvisual.ListKind,
				Attrs: mdvisual.Attrs{Ordered: true, Start: 0},
				Children: []mdvisual.Token{{
					Kind:     mdvisual.ListItemKind,
					Children: []mdvisual.Token{{Kind: mdvisual.BlockTextKind, Children: []mdvisual.Token{text("x")}}},
				}},
			}},
			want: []mdvisual.Token{{
				Kind:  mdvisual.ListKind,
				Attrs: mdvisual.Attrs{Ordered: true, Start: 1},
				Children: []mdvisual.Token{{
					Kind:     mdvisual.ListItemKind,
					Children: []mdvisual.Token{{Kind: mdvisual.ParagraphKind, Children: []mdvisual.Token{text("x")}}},
				}},
			}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Normalize(test.tokens)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Normalize(...) (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	tokens := []mdvisual.Token{{
		Kind: mdvisual.ParagraphKind,
		Children: []mdvisual.Token{
			text("one"),
			{Kind: mdvisual.SoftBreakKind},
			text("two"),
		},
	}}
	Normalize(tokens)
	want := []mdvisual.Token{{
		Kind: mdvisual.ParagraphKind,
		Children: []mdvisual.Token{
			text("one"),
			{Kind: mdvisual.SoftBreakKind},
			text("two"),
		},
	}}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("Normalize mutated its input (-want +got):\n%s", diff)
	}
}
