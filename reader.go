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
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Entity is one titled block of lines in an XRY report. The first line is the
// entity title, all further lines are key value pairs, namespaces or value
// continuations.
type Entity struct {
	lines []string
}

// Title returns the first line of the entity. Entities produced by a Reader
// are never empty.
func (e Entity) Title() string {
	if len(e.lines) == 0 {
		return ""
	}
	return e.lines[0]
}

// Lines returns all lines of the entity, including the title.
func (e Entity) Lines() []string {
	return e.lines
}

// Body returns the lines of the entity after the title.
func (e Entity) Body() []string {
	if len(e.lines) == 0 {
		return nil
	}
	return e.lines[1:]
}

// Reader produces a sequence of entities from an XRY report stream. Entities
// are separated by blank lines. The Reader supports one entity of lookahead
// through Peek; a peeked entity is cached in a single slot and returned
// unchanged by the following Next.
type Reader struct {
	scanner *bufio.Scanner
	path    string
	peeked  *Entity
	err     error
	done    bool
}

// NewReader creates a Reader over an XRY report stream. The path is only used
// in errors and diagnostics.
func NewReader(r io.Reader, path string) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: scanner, path: path}
}

// ReportPath returns the path of the report this Reader was created for.
func (r *Reader) ReportPath() string {
	return r.path
}

// HasNext reports whether another entity is available. It fills the peek slot
// so that a following Next or Peek does not re-read the stream. HasNext
// returns false once the stream fails; the failure is available via Err.
func (r *Reader) HasNext() bool {
	if r.peeked != nil {
		return true
	}
	if r.done || r.err != nil {
		return false
	}
	entity, err := r.read()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		r.done = true
		return false
	}
	r.peeked = &entity
	return true
}

// Next consumes and returns the next entity. It returns io.EOF when the
// report is exhausted.
func (r *Reader) Next() (Entity, error) {
	if r.peeked != nil {
		entity := *r.peeked
		r.peeked = nil
		return entity, nil
	}
	if r.err != nil {
		return Entity{}, r.err
	}
	if r.done {
		return Entity{}, io.EOF
	}
	entity, err := r.read()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		r.done = true
		return Entity{}, err
	}
	return entity, nil
}

// Peek returns the next entity without consuming it. Repeated calls return
// the identical entity.
func (r *Reader) Peek() (Entity, error) {
	if !r.HasNext() {
		if r.err != nil {
			return Entity{}, r.err
		}
		return Entity{}, io.EOF
	}
	return *r.peeked, nil
}

// Err returns the first I/O error encountered while reading the report,
// if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) read() (Entity, error) {
	var lines []string
	for r.scanner.Scan() {
		line := strings.TrimPrefix(r.scanner.Text(), "\ufeff")
		if strings.TrimSpace(line) == "" {
			if len(lines) == 0 {
				// blank lines between entities
				continue
			}
			return Entity{lines: lines}, nil
		}
		lines = append(lines, line)
	}
	if err := r.scanner.Err(); err != nil {
		return Entity{}, errors.Wrapf(err, "could not read report %s", r.path)
	}
	if len(lines) == 0 {
		return Entity{}, io.EOF
	}
	return Entity{lines: lines}, nil
}
