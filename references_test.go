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

import "testing"

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"", ""},
		{"foo", "foo"},
		{"  Foo  ", "foo"},
		{"Foo\t Bar", "foo bar"},
		{"ΑΓΩ", "αγω"},
		{"Straße", "strasse"},
	}
	for _, test := range tests {
		if got := NormalizeLabel(test.label); got != test.want {
			t.Errorf("NormalizeLabel(%q) = %q; want %q", test.label, got, test.want)
		}
	}
}

func TestReferenceMapAdd(t *testing.T) {
	m := make(ReferenceMap)
	m.Add("Foo", LinkDefinition{Destination: "https://first.example"})
	m.Add("foo", LinkDefinition{Destination: "https://second.example"})
	m.Add("", LinkDefinition{Destination: "https://empty.example"})

	if got := m["foo"].Destination; got != "https://first.example" {
		t.Errorf("m[foo].Destination = %q; first definition must win", got)
	}
	if m.MatchReference("") {
		t.Error("empty label must not be added")
	}
	if len(m) != 1 {
		t.Errorf("len(m) = %d; want 1", len(m))
	}
}

func TestReferenceMapResolve(t *testing.T) {
	m := ReferenceMap{
		"label": {Destination: "https://label.example"},
		"text":  {Destination: "https://text.example"},
	}
	tests := []struct {
		label, text string
		want        string
		ok          bool
	}{
		{"Label", "anything", "https://label.example", true},
		{"", "Text", "https://text.example", true},
		{"", "missing", "", false},
		{"missing", "text", "", false},
	}
	for _, test := range tests {
		def, ok := m.Resolve(test.label, test.text)
		if ok != test.ok || def.Destination != test.want {
			t.Errorf("Resolve(%q, %q) = %q, %t; want %q, %t",
				test.label, test.text, def.Destination, ok, test.want, test.ok)
		}
	}
}

func TestResolveOnNilMap(t *testing.T) {
	var m ReferenceMap
	if _, ok := m.Resolve("x", "y"); ok {
		t.Error("nil map resolved a reference")
	}
}
