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
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// entityFormat supplies the per-report key and namespace catalogs to the
// entity compiler.
type entityFormat interface {
	// CanProcess reports whether the pair's key is recognized by the format.
	CanProcess(pair KeyValuePair) bool
	// IsNamespace reports whether the line is a recognized namespace label.
	IsNamespace(line string) bool
}

// Format supplies the per-report catalogs and artifact construction for the
// shared single entity processing loop.
type Format interface {
	entityFormat
	// MakeArtifact builds a record from the compiled pairs of one entity and
	// emits it to the sink unless the record is empty.
	MakeArtifact(pairs []KeyValuePair, sink ArtifactSink) error
}

// singleEntityParser runs the shared processing loop for report formats whose
// records never span entities (calls, contacts, web bookmarks).
type singleEntityParser struct {
	format Format
	log    *slog.Logger
}

func (p *singleEntityParser) Parse(reader *Reader, sink ArtifactSink) error {
	p.log.Info("processing report", "report", reader.ReportPath())
	for reader.HasNext() {
		entity, err := reader.Next()
		if err != nil {
			return err
		}
		pairs, err := compileEntity(entity, p.format, p.log, nil)
		if err != nil {
			return err
		}
		if err := p.format.MakeArtifact(pairs, sink); err != nil {
			return errors.Wrapf(err, "could not create artifact for entity %q", entity.Title())
		}
	}
	return reader.Err()
}

// expandFunc extends the value of a freshly compiled pair, e.g. with
// continuation segments from subsequent entities.
type expandFunc func(pair KeyValuePair, entity Entity, value *strings.Builder) error

// compileEntity walks the entity's lines and resolves them into validated key
// value pairs. Namespace lines update the active namespace, values wrapped
// across physical lines are joined back together and everything else is
// discarded with a diagnostic.
func compileEntity(entity Entity, format entityFormat, log *slog.Logger, expand expandFunc) ([]KeyValuePair, error) {
	log.Info("processing entity", "title", entity.Title())

	lines := &lineQueue{lines: entity.Body()}
	var pairs []KeyValuePair
	namespace := NamespaceNone
	for !lines.empty() {
		line := lines.pop()
		if format.IsNamespace(line) {
			namespace = normalize(line)
			continue
		}
		if !IsPair(line) {
			log.Error("expected a key value pair, discarding", "line", line)
			continue
		}

		pair := NewPair(line, namespace)
		if !validatePair(pair, format, log) {
			continue
		}

		var value strings.Builder
		value.WriteString(pair.Value)
		absorbContinuations(&value, lines, format.IsNamespace)
		if expand != nil {
			if err := expand(pair, entity, &value); err != nil {
				return nil, err
			}
		}
		pair.Value = value.String()
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// absorbContinuations appends all immediately following lines that are
// neither pairs nor namespaces to the value, space-joined and trimmed.
func absorbContinuations(value *strings.Builder, lines *lineQueue, isNamespace func(string) bool) {
	for !lines.empty() && !IsPair(lines.peek()) && !isNamespace(lines.peek()) {
		value.WriteString(" ")
		value.WriteString(strings.TrimSpace(lines.pop()))
	}
}

func validatePair(pair KeyValuePair, format entityFormat, log *slog.Logger) bool {
	if isMetaKey(pair.Key) {
		// meta keys belong to the segment stitcher, not to records
		return false
	}
	if !format.CanProcess(pair) {
		log.Warn("unrecognized key, discarding", "pair", pair.String())
		return false
	}
	if pair.Value == "" {
		log.Warn("recognized key with empty value, discarding", "key", pair.Key)
		return false
	}
	return true
}

type lineQueue struct {
	lines []string
	next  int
}

func (q *lineQueue) empty() bool {
	return q.next >= len(q.lines)
}

func (q *lineQueue) peek() string {
	return q.lines[q.next]
}

func (q *lineQueue) pop() string {
	line := q.lines[q.next]
	q.next++
	return line
}
