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

import (
	"fmt"
	"strings"
)

// KeyValuePair is a single "[key]  value" line of an XRY entity, scoped by
// the namespace that was active when the line appeared. The key is matched
// case-insensitively, the value keeps its original case.
type KeyValuePair struct {
	Key       string
	Value     string
	Namespace string
}

// IsPair reports whether the trimmed line is a key value pair, i.e. it starts
// with a bracketed non-empty key. The value portion may be empty.
func IsPair(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	end := strings.Index(trimmed, "]")
	if end < 0 {
		return false
	}
	return strings.TrimSpace(trimmed[1:end]) != ""
}

// NewPair splits a key value line into its pair. Callers must filter lines
// with IsPair first; NewPair assumes the bracket syntax is present.
func NewPair(line, namespace string) KeyValuePair {
	trimmed := strings.TrimSpace(line)
	end := strings.Index(trimmed, "]")
	key := strings.ToLower(strings.TrimSpace(trimmed[1:end]))
	value := strings.TrimSpace(trimmed[end+1:])
	return KeyValuePair{Key: key, Value: value, Namespace: namespace}
}

// HasKey reports whether the pair has the given key, compared normalized.
func (p KeyValuePair) HasKey(name string) bool {
	return p.Key == strings.ToLower(strings.TrimSpace(name))
}

func (p KeyValuePair) String() string {
	if p.Namespace == "" {
		return fmt.Sprintf("%s: %s", p.Key, p.Value)
	}
	return fmt.Sprintf("%s/%s: %s", p.Namespace, p.Key, p.Value)
}
