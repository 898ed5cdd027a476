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
	"strconv"
	"strings"
)

// stitcher reconstructs message bodies that are segmented across several
// consecutive report entities. A fresh stitcher is created per report parse;
// its seen set must not leak across reports.
type stitcher struct {
	log  *slog.Logger
	seen map[int]bool
}

func newStitcher(log *slog.Logger) *stitcher {
	return &stitcher{log: log, seen: map[int]bool{}}
}

// appendSegments extends value with the text of all directly following
// entities that share the current entity's reference number. The first entity
// with a different or missing reference number is left unconsumed, it belongs
// to another logical message. Consumption is a single linear pass, there is
// no backtracking.
func (s *stitcher) appendSegments(entity Entity, reader *Reader, isNamespace func(string) bool, value *strings.Builder) error {
	reference, ok := s.metaValue(entity.Lines(), metaReferenceNumber)
	if !ok {
		// not segmented
		return nil
	}

	s.log.Info("message entity appears to be segmented", "reference", reference)

	if s.seen[reference] {
		s.log.Error("reference number seen before, segments are not contiguous, "+
			"an otherwise duplicate artifact will be created", "reference", reference)
	}
	s.seen[reference] = true

	current, ok := s.metaValue(entity.Lines(), metaSegmentNumber)
	if !ok {
		s.log.Error("segmented message entity has no segment number", "reference", reference)
		return nil
	}

	for reader.HasNext() {
		next, err := reader.Peek()
		if err != nil {
			return err
		}
		nextReference, ok := s.metaValue(next.Lines(), metaReferenceNumber)
		if !ok || nextReference != reference {
			// not part of the current message thread, do not consume
			break
		}

		if _, err := reader.Next(); err != nil {
			return err
		}
		s.log.Info("processing segment", "title", next.Title(), "reference", reference)

		nextSegment, hasSegment := s.metaValue(next.Lines(), metaSegmentNumber)
		if !hasSegment {
			s.log.Error("segment has no segment number, reconstructed text order is undetermined",
				"reference", reference)
		} else if nextSegment != current+1 {
			s.log.Error("contiguous segments are not ascending incrementally, "+
				"reconstructed text will be out of order",
				"reference", reference, "segment", nextSegment, "previous", current)
		}

		lines := &lineQueue{lines: next.Body()}
		for !lines.empty() {
			line := lines.pop()
			if !IsPair(line) {
				continue
			}
			pair := NewPair(line, NamespaceNone)
			if pair.HasKey(keyText) || pair.HasKey(keyMessage) {
				value.WriteString(" ")
				value.WriteString(pair.Value)
				absorbContinuations(value, lines, isNamespace)
			}
		}

		if hasSegment {
			current = nextSegment
		}
	}
	return nil
}

// metaValue scans the entity lines for the meta key and returns its integer
// value. The first match wins.
func (s *stitcher) metaValue(lines []string, metaKey string) (int, bool) {
	for _, line := range lines {
		if !IsPair(line) {
			continue
		}
		pair := NewPair(line, NamespaceNone)
		if !pair.HasKey(metaKey) {
			continue
		}
		number, err := strconv.Atoi(pair.Value)
		if err != nil {
			s.log.Error("meta key value is not an integer", "key", metaKey, "value", pair.Value)
			continue
		}
		return number, true
	}
	return 0, false
}
