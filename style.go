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

// LinkStyle selects how hyperlinks are decorated in rendered markup.
type LinkStyle uint8

const (
	// LinkUnstyled emits only the ref tag around link text.
	LinkUnstyled LinkStyle = iota
	// LinkStyled additionally wraps link text
	// in color and underline tags using [Style.LinkColor].
	LinkStyled
)

// VerticalAlignment is a vertical alignment for text within its box.
type VerticalAlignment uint8

const (
	VAlignTop VerticalAlignment = iota
	VAlignMiddle
	VAlignBottom
)

// Style is the read-only configuration for one render pass.
// The zero value is not useful; start from [DefaultStyle].
type Style struct {
	// BaseFontSize is the body text size.
	// Heading sizes are fixed multiples of it.
	BaseFontSize float64
	// BodyFontName and CodeFontName name the proportional and
	// monospace font families. Code spans and code blocks always use
	// CodeFontName regardless of the body settings.
	BodyFontName string
	CodeFontName string
	// BodyColor, LinkColor, and CodeBackgroundColor are opaque color
	// strings passed through to the host toolkit.
	BodyColor           string
	LinkColor           string
	CodeBackgroundColor string
	// LineHeight is the line spacing multiplier.
	LineHeight float64
	// HorizontalAlign is the default text alignment,
	// used wherever a token does not declare its own.
	HorizontalAlign Alignment
	// VerticalAlign is the default vertical alignment of text boxes.
	VerticalAlign VerticalAlignment
	// TextWidth is an optional width constraint passed through to
	// text nodes. Zero means unconstrained.
	TextWidth float64
	// LinkStyle selects hyperlink decoration.
	LinkStyle LinkStyle
}

// DefaultStyle returns the reference styling:
// 15-point body text, monospace code on a dark panel, blue links.
func DefaultStyle() Style {
	return Style{
		BaseFontSize:        15,
		BodyFontName:        "Roboto",
		CodeFontName:        "RobotoMono-Regular",
		BodyColor:           "#ffffff",
		LinkColor:           "#4da6ff",
		CodeBackgroundColor: "#1e1e1e",
		LineHeight:          1.2,
		HorizontalAlign:     AlignLeft,
		VerticalAlign:       VAlignTop,
		LinkStyle:           LinkStyled,
	}
}

// headingScale maps heading levels 1 through 6 to multiples of the base
// font size. Level 6 renders at exactly the body size; every level above
// it is strictly larger.
var headingScale = [7]float64{0, 2.5, 2.0, 1.75, 1.5, 1.25, 1.0}

// HeadingSize returns the font size for a heading of the given level.
// Levels outside 1 through 6 are clamped.
func (s Style) HeadingSize(level int) float64 {
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	return s.BaseFontSize * headingScale[level]
}

// resolveAlign replaces [AlignNone] with the configured default,
// itself defaulting to left.
func (s Style) resolveAlign(a Alignment) Alignment {
	if a != AlignNone {
		return a
	}
	if s.HorizontalAlign != AlignNone {
		return s.HorizontalAlign
	}
	return AlignLeft
}
