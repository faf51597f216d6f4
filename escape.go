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

// The visual markup dialect reserves '[' and ']' for tags
// and '&' for escape sequences.
// Escaping is a single left-to-right pass,
// so replacement output is never rescanned:
// escaping "&bl;" yields "&amp;bl;", not "&amp;&bl;".
var (
	markupEscaper = bytereplacer.New(
		"&", "&amp;",
		"[", "&bl;",
		"]", "&br;",
	)
	markupUnescaper = bytereplacer.New(
		"&amp;", "&",
		"&bl;", "[",
		"&br;", "]",
	)
)

// Escape replaces markup control characters in plain text
// with their escape sequences:
// '&' becomes "&amp;", '[' becomes "&bl;", and ']' becomes "&br;".
// [Unescape] is its exact inverse.
func Escape(text string) string {
	return string(markupEscaper.Replace([]byte(text)))
}

// Unescape reverses [Escape].
// It matches sequences leftmost-longest,
// so "&amp;bl;" correctly unescapes to "&bl;".
func Unescape(text string) string {
	return string(markupUnescaper.Replace([]byte(text)))
}

// urlEscaper percent-encodes only the bracket characters:
// URLs are embedded in "[ref=...]" tags,
// and a bracket inside the value would terminate the tag early.
// Percent-encoding keeps the value a working URL,
// unlike the markup escapes used for display text.
var urlEscaper = strings.NewReplacer(
	"[", "%5B",
	"]", "%5D",
)

// EscapeURL encodes a link destination
// so that it can never break out of a "ref=" tag,
// regardless of adversarial bracket patterns in the input.
func EscapeURL(url string) string {
	return urlEscaper.Replace(url)
}
