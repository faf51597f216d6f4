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

package main

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	xhtml "golang.org/x/net/html"

	"zombiezen.com/go/mdvisual"
)

// termRenderer paints a visual node tree as ANSI terminal text.
type termRenderer struct {
	lip   *lipgloss.Renderer
	width int
	color bool
}

func newTermRenderer(w io.Writer, width int, color bool) *termRenderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	// Force the profile: output may be piped, and auto-detection would
	// strip colors the user asked for.
	lip := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	lip.SetColorProfile(profile)
	return &termRenderer{lip: lip, width: width, color: color}
}

func (tr *termRenderer) render(nodes []mdvisual.Node) string {
	out := tr.renderNodes(nodes, 0)
	return strings.TrimRight(out, "\n") + "\n"
}

func (tr *termRenderer) renderNodes(nodes []mdvisual.Node, indent int) string {
	var blocks []string
	for _, n := range nodes {
		if s := tr.renderNode(n, indent); s != "" {
			blocks = append(blocks, s)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (tr *termRenderer) renderNode(n mdvisual.Node, indent int) string {
	switch n := n.(type) {
	case mdvisual.TextNode:
		return tr.renderText(n, indent)
	case mdvisual.BoxNode:
		return tr.renderBox(n, indent)
	case mdvisual.GridNode:
		return tr.renderGrid(n, indent)
	case mdvisual.ImageNode:
		alt := n.AltText
		if alt == "" {
			alt = "image"
		}
		return indentLines("["+alt+"] ("+n.Source+")", indent)
	case mdvisual.SpacerNode:
		return ""
	case mdvisual.RuleNode:
		width := tr.width - indent
		if width < 1 {
			width = 1
		}
		return indentLines(strings.Repeat("─", width), indent)
	default:
		return ""
	}
}

func (tr *termRenderer) renderText(n mdvisual.TextNode, indent int) string {
	if n.Monospace {
		return tr.renderCode(n, indent)
	}
	content := tr.renderMarkup(n)
	width := tr.width - indent
	if width < 10 {
		width = 10
	}
	return indentLines(wordwrap.String(content, width), indent)
}

func (tr *termRenderer) renderCode(n mdvisual.TextNode, indent int) string {
	code := mdvisual.Unescape(n.Markup)
	if tr.color && n.CodeLanguage != "" {
		var buf strings.Builder
		if err := quick.Highlight(&buf, code, n.CodeLanguage, "terminal256", "monokai"); err == nil {
			code = strings.TrimRight(buf.String(), "\n")
		}
	}
	return indentLines(code, indent+2)
}

func (tr *termRenderer) renderBox(n mdvisual.BoxNode, indent int) string {
	indent += int(n.Padding.Left / 10)
	if !n.Vertical && len(n.Children) == 2 {
		// Marker-plus-content list row: hang the content off the marker.
		marker := tr.renderNode(n.Children[0], 0)
		content := tr.renderNode(n.Children[1], 0)
		return indentLines(hangContent(marker, content), indent)
	}
	var parts []string
	for _, child := range n.Children {
		if s := tr.renderNode(child, 0); s != "" {
			parts = append(parts, s)
		}
	}
	var joined string
	if n.Vertical {
		joined = strings.Join(parts, "\n")
	} else {
		joined = strings.Join(parts, " ")
	}
	return indentLines(joined, indent)
}

func (tr *termRenderer) renderGrid(n mdvisual.GridNode, indent int) string {
	if n.Columns < 1 {
		return ""
	}
	cells := make([]string, len(n.Cells))
	widths := make([]int, n.Columns)
	for i, cell := range n.Cells {
		text, _ := cell.(mdvisual.TextNode)
		cells[i] = tr.renderMarkup(text)
		col := i % n.Columns
		if w := lipgloss.Width(cells[i]); w > widths[col] {
			widths[col] = w
		}
	}

	var lines []string
	for rowStart := 0; rowStart < len(cells); rowStart += n.Columns {
		var parts []string
		for col := 0; col < n.Columns && rowStart+col < len(cells); col++ {
			cell := cells[rowStart+col]
			pad := widths[col] - lipgloss.Width(cell)
			if pad > 0 {
				cell += strings.Repeat(" ", pad)
			}
			parts = append(parts, cell)
		}
		lines = append(lines, strings.TrimRight(strings.Join(parts, "  "), " "))
		if rowStart == 0 {
			var rule []string
			for _, w := range widths {
				rule = append(rule, strings.Repeat("─", w))
			}
			lines = append(lines, strings.Join(rule, "  "))
		}
	}
	return indentLines(strings.Join(lines, "\n"), indent)
}

// markupRun is the style state accumulated while scanning bracket tags.
type markupRun struct {
	bold      int
	italic    int
	strike    int
	underline int
	colors    []string
	refs      []string
}

// renderMarkup interprets the node's bracket-tag markup,
// translating tags to ANSI attributes and unescaping text runs.
// Unbalanced or unknown tags render literally,
// matching how lenient markup labels behave.
func (tr *termRenderer) renderMarkup(n mdvisual.TextNode) string {
	var out strings.Builder
	var run markupRun
	markup := n.Markup
	for len(markup) > 0 {
		open := strings.IndexByte(markup, '[')
		if open < 0 {
			tr.writeRun(&out, n, &run, markup)
			break
		}
		tr.writeRun(&out, n, &run, markup[:open])
		markup = markup[open:]
		end := strings.IndexByte(markup, ']')
		if end < 0 {
			tr.writeRun(&out, n, &run, markup)
			break
		}
		tag := markup[1:end]
		markup = markup[end+1:]
		if !tr.applyTag(&out, n, &run, tag) {
			tr.writeRun(&out, n, &run, "["+tag+"]")
		}
	}
	return out.String()
}

func (tr *termRenderer) applyTag(out *strings.Builder, n mdvisual.TextNode, run *markupRun, tag string) bool {
	switch {
	case tag == "b":
		run.bold++
	case tag == "/b" && run.bold > 0:
		run.bold--
	case tag == "i":
		run.italic++
	case tag == "/i" && run.italic > 0:
		run.italic--
	case tag == "s":
		run.strike++
	case tag == "/s" && run.strike > 0:
		run.strike--
	case tag == "u":
		run.underline++
	case tag == "/u" && run.underline > 0:
		run.underline--
	case strings.HasPrefix(tag, "color="):
		run.colors = append(run.colors, strings.TrimPrefix(tag, "color="))
	case tag == "/color" && len(run.colors) > 0:
		run.colors = run.colors[:len(run.colors)-1]
	case strings.HasPrefix(tag, "font="):
		// Terminal cells have one font; nothing to do.
	case tag == "/font":
	case strings.HasPrefix(tag, "ref="):
		run.refs = append(run.refs, strings.TrimPrefix(tag, "ref="))
	case tag == "/ref" && len(run.refs) > 0:
		url := run.refs[len(run.refs)-1]
		run.refs = run.refs[:len(run.refs)-1]
		if url != "" {
			faint := tr.lip.NewStyle().Faint(true)
			out.WriteString(" " + faint.Render("("+url+")"))
		}
	default:
		return false
	}
	return true
}

// writeRun emits one styled text run.
// Markup escapes come off first, then HTML entities:
// inline HTML reaches the node entity-escaped for display,
// and a terminal shows it more readably decoded.
func (tr *termRenderer) writeRun(out *strings.Builder, n mdvisual.TextNode, run *markupRun, text string) {
	if text == "" {
		return
	}
	text = xhtml.UnescapeString(mdvisual.Unescape(text))
	style := tr.lip.NewStyle()
	if n.Bold || run.bold > 0 {
		style = style.Bold(true)
	}
	if run.italic > 0 {
		style = style.Italic(true)
	}
	if run.strike > 0 {
		style = style.Strikethrough(true)
	}
	if run.underline > 0 || len(run.refs) > 0 {
		style = style.Underline(true)
	}
	if len(run.colors) > 0 {
		style = style.Foreground(lipgloss.Color(run.colors[len(run.colors)-1]))
	}
	out.WriteString(style.Render(text))
}

func indentLines(s string, indent int) string {
	if indent <= 0 || s == "" {
		return s
	}
	prefix := strings.Repeat(" ", indent)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// hangContent joins a list marker with its content,
// indenting continuation lines to the marker's width.
func hangContent(marker, content string) string {
	markerWidth := lipgloss.Width(marker) + 1
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = marker + " " + line
		} else if line != "" {
			lines[i] = strings.Repeat(" ", markerWidth) + line
		}
	}
	return strings.Join(lines, "\n")
}
