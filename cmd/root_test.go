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

package cmd

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensicanalysis/xry"
	"github.com/forensicanalysis/xry/xrystore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingSink struct {
	messages  int
	calls     int
	contacts  int
	bookmarks int
}

func (s *countingSink) AddMessage(*xry.Message) error         { s.messages++; return nil }
func (s *countingSink) AddCallLog(*xry.Call) error            { s.calls++; return nil }
func (s *countingSink) AddContact(*xry.Contact) error         { s.contacts++; return nil }
func (s *countingSink) AddWebBookmark(*xry.WebBookmark) error { s.bookmarks++; return nil }

func TestParseReport(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "reports/Calls.txt",
		[]byte("Call #1\nFrom\n[Tel] 111\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "reports/Accounts.txt",
		[]byte("Account #1\n[User] alice\n"), 0644))

	sink := &countingSink{}
	require.NoError(t, parseReport(fs, "reports/Calls.txt", sink, testLogger()))
	assert.Equal(t, 1, sink.calls)

	// unsupported report types are skipped without an error
	require.NoError(t, parseReport(fs, "reports/Accounts.txt", sink, testLogger()))
	assert.Equal(t, 1, sink.calls)
	assert.Equal(t, 0, sink.messages)
}

func TestParseReports(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "reports/Calls.txt",
		[]byte("Call #1\nFrom\n[Tel] 111\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "reports/Messages-SMS.txt",
		[]byte("SMS Message #1\n[Text] hello\n"), 0644))

	storeName := filepath.Join(t.TempDir(), "test.sqlite")
	require.NoError(t, parseReports(fs, "reports", storeName, testLogger()))

	store, err := xrystore.Open(storeName)
	require.NoError(t, err)
	defer store.Close()

	all, err := store.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
