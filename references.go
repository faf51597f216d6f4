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

	"golang.org/x/text/cases"
)

// A type that implements ReferenceMatcher
// can be checked for the presence of link reference definitions.
type ReferenceMatcher interface {
	MatchReference(normalizedLabel string) bool
}

// LinkDefinition is the data of a [link reference definition].
//
// [link reference definition]: https://spec.commonmark.org/0.30/#link-reference-definition
type LinkDefinition struct {
	Destination  string
	Title        string
	TitlePresent bool
}

// ReferenceMap is a mapping of [normalized labels] to link definitions.
// It is built once per document by the parser,
// then read by both the renderer and the serializer.
//
// [normalized labels]: https://spec.commonmark.org/0.30/#matches
type ReferenceMap map[string]LinkDefinition

// NormalizeLabel converts a reference label to its lookup form:
// surrounding whitespace trimmed,
// interior whitespace runs collapsed to one space,
// and Unicode case folded.
// A fresh folder per call: a [cases.Caser] carries state
// and must not be shared between goroutines.
func NormalizeLabel(label string) string {
	label = strings.Join(strings.Fields(label), " ")
	return cases.Fold().String(label)
}

// MatchReference reports whether the normalized label appears in the map.
func (m ReferenceMap) MatchReference(normalizedLabel string) bool {
	_, ok := m[normalizedLabel]
	return ok
}

// Add records a definition under the normalized form of label.
// In case of conflicts the first definition wins,
// matching reference resolution in Markdown.
func (m ReferenceMap) Add(label string, def LinkDefinition) {
	normalized := NormalizeLabel(label)
	if normalized == "" {
		return
	}
	if _, exists := m[normalized]; exists {
		return
	}
	m[normalized] = def
}

// Resolve looks up the definition for a reference-style link.
// A link with an explicit label ("[text][label]") resolves by that label;
// a collapsed or shortcut link ("[text][]", "[text]") resolves by its
// own text. Resolve reports false when neither form matches.
func (m ReferenceMap) Resolve(label, text string) (LinkDefinition, bool) {
	if label == "" {
		label = text
	}
	def, ok := m[NormalizeLabel(label)]
	return def, ok
}
