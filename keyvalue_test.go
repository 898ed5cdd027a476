// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

package xry

import "testing"

func TestIsPair(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"pair", "[Tel] 12345", true},
		{"pair without value", "[Deleted]", true},
		{"padded pair", "   [Tel] 12345   ", true},
		{"namespace", "From", false},
		{"empty", "", false},
		{"unclosed bracket", "[Tel 12345", false},
		{"empty key", "[ ] 12345", false},
		{"text continuation", "and more text", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPair(tt.line); got != tt.want {
				t.Errorf("IsPair(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestNewPair(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		namespace string
		want      KeyValuePair
	}{
		{"simple", "[Tel] 12345", "", KeyValuePair{Key: "tel", Value: "12345"}},
		{"namespaced", "[Tel] 12345", "from", KeyValuePair{Key: "tel", Value: "12345", Namespace: "from"}},
		{"mixed case key", "[Reference Number] 7", "", KeyValuePair{Key: "reference number", Value: "7"}},
		{"value keeps case", "[Name] Alice Smith", "", KeyValuePair{Key: "name", Value: "Alice Smith"}},
		{"empty value", "[Deleted]", "", KeyValuePair{Key: "deleted"}},
		{"padded", "  [ Tel ]   12345  ", "", KeyValuePair{Key: "tel", Value: "12345"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPair(tt.line, tt.namespace); got != tt.want {
				t.Errorf("NewPair(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestHasKey(t *testing.T) {
	pair := NewPair("[Reference Number] 7", "")
	if !pair.HasKey("Reference Number") {
		t.Error("HasKey should match case insensitively")
	}
	if pair.HasKey("segment number") {
		t.Error("HasKey should not match a different key")
	}
}

func TestPairString(t *testing.T) {
	if got := NewPair("[Tel] 12345", "").String(); got != "tel: 12345" {
		t.Errorf("String() = %q", got)
	}
	if got := NewPair("[Tel] 12345", "from").String(); got != "from/tel: 12345" {
		t.Errorf("String() = %q", got)
	}
}
