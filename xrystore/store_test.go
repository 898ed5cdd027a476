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

package xrystore

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("store could not be created: %v", err)
	}
	return store
}

func TestNew(t *testing.T) {
	url := filepath.Join(t.TempDir(), "test.sqlite")

	store, err := New(url)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := New(url); err != ErrStoreExists {
		t.Errorf("New() on an existing store error = %v, want %v", err, ErrStoreExists)
	}

	store, err = Open(url)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOpenNotExists(t *testing.T) {
	url := filepath.Join(t.TempDir(), "missing.sqlite")
	if _, err := Open(url); err != ErrStoreNotExists {
		t.Errorf("Open() error = %v, want %v", err, ErrStoreNotExists)
	}
}

func TestStoreInsert(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	tests := []struct {
		name    string
		element string
		want    string
		wantErr bool
	}{
		{"message", `{"type": "message", "text": "hi"}`, "message--", false},
		{"contact", `{"type": "contact", "name": "Alice"}`, "contact--", false},
		{"unknown type passes", `{"type": "note", "text": "anything"}`, "note--", false},
		{"id is kept", `{"id": "message--ff", "type": "message"}`, "message--ff", false},
		{"missing type", `{"text": "hi"}`, "", true},
		{"invalid direction", `{"type": "message", "direction": "sideways"}`, "", true},
		{"bookmark without url", `{"type": "web-bookmark", "title": "t"}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Insert(JSONElement(tt.element))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Insert() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !strings.HasPrefix(got, tt.want) {
				t.Errorf("Insert() = %v, want prefix %v", got, tt.want)
			}
		})
	}
}

func TestStoreInsertStruct(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	message := NewMessage()
	message.Direction = "incoming"
	message.Sender = "+15554449311"
	message.Recipients = []string{"111", "222"}
	message.Text = "hello"

	id, err := store.InsertStruct(message)
	if err != nil {
		t.Fatalf("InsertStruct() error = %v", err)
	}

	element, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	assert.Equal(t, "message", gjson.GetBytes(element, "type").String())
	assert.Equal(t, "hello", gjson.GetBytes(element, "text").String())
	assert.Equal(t, "+15554449311", gjson.GetBytes(element, "sender").String())
	assert.Equal(t, int64(2), gjson.GetBytes(element, "recipients.#").Int())
}

func TestStoreSelect(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	for _, element := range []string{
		`{"type": "message", "text": "the unicorn"}`,
		`{"type": "message", "text": "plain"}`,
		`{"type": "contact", "name": "Alice"}`,
	} {
		if _, err := store.Insert(JSONElement(element)); err != nil {
			t.Fatal(err)
		}
	}

	messages, err := store.Select([]map[string]string{{"type": "message"}})
	assert.NoError(t, err)
	assert.Len(t, messages, 2)

	all, err := store.All()
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := store.Search("unicorn")
	assert.NoError(t, err)
	assert.Len(t, found, 1)

	none, err := store.Select([]map[string]string{{"type": "calllog"}})
	assert.NoError(t, err)
	assert.Len(t, none, 0)
}

func TestStoreQuery(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	for _, element := range []string{
		`{"type": "message", "text": "first"}`,
		`{"type": "message", "text": "second"}`,
		`{"type": "contact", "name": "Alice"}`,
	} {
		if _, err := store.Insert(JSONElement(element)); err != nil {
			t.Fatal(err)
		}
	}

	elements, err := store.Query("SELECT json FROM elements WHERE json_extract(json, '$.type') = 'message'")
	assert.NoError(t, err)
	assert.Len(t, elements, 2)
	for _, element := range elements {
		assert.Equal(t, "message", gjson.GetBytes(element, "type").String())
	}

	if _, err := store.Query("SELECT json FROM nothere"); err == nil {
		t.Error("Query on a missing table did not return an error")
	}
}

func TestStoreReopen(t *testing.T) {
	url := filepath.Join(t.TempDir(), "test.sqlite")

	store, err := New(url)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Insert(JSONElement(`{"type": "message", "text": "hi"}`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	store, err = Open(url)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	all, err := store.All()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStoreValidate(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	if _, err := store.Insert(JSONElement(`{"type": "message", "text": "hi"}`)); err != nil {
		t.Fatal(err)
	}

	flaws, err := store.Validate()
	assert.NoError(t, err)
	assert.Empty(t, flaws)
}
