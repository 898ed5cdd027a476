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

import "log/slog"

// All known keys of Web-Bookmarks reports.
var bookmarkKeys = NewCatalog(
	Key{Name: "application"},
	Key{Name: "domain", Attr: AttrDomain},
	Key{Name: "web address"},
)

// BookmarksParser parses Web-Bookmarks reports.
type BookmarksParser struct {
	singleEntityParser
}

// NewBookmarksParser creates a parser for one Web-Bookmarks report.
func NewBookmarksParser(log *slog.Logger) *BookmarksParser {
	p := &BookmarksParser{}
	p.singleEntityParser = singleEntityParser{format: p, log: log}
	return p
}

// CanProcess reports whether the pair's key is a recognized bookmark key.
func (p *BookmarksParser) CanProcess(pair KeyValuePair) bool {
	return bookmarkKeys.Contains(pair.Key)
}

// IsNamespace always returns false, no namespaces are known for web reports.
func (p *BookmarksParser) IsNamespace(string) bool {
	return false
}

// MakeArtifact builds a web bookmark record from the compiled pairs of one
// entity and emits it if the required URL field is present.
func (p *BookmarksParser) MakeArtifact(pairs []KeyValuePair, sink ArtifactSink) error {
	builder := NewWebBookmarkBuilder()
	for _, pair := range pairs {
		p.addToBuilder(builder, pair)
	}
	if !builder.HasRequiredFields() {
		return nil
	}
	return sink.AddWebBookmark(builder.Build())
}

func (p *BookmarksParser) addToBuilder(builder *WebBookmarkBuilder, pair KeyValuePair) {
	switch pair.Key {
	case "application":
		builder.SetApplication(pair.Value)
	case "web address":
		builder.SetURL(pair.Value)
	default:
		key, _ := bookmarkKeys.Lookup(pair.Key)
		builder.AddAttribute(Attribute{Type: key.Attr, Value: pair.Value})
	}
}

// WebBookmark is one web bookmark record, immutable once built.
type WebBookmark struct {
	url          string
	title        string
	creationTime int64
	application  string
	attributes   []Attribute
}

// URL returns the bookmarked web address.
func (w *WebBookmark) URL() string { return w.url }

// Title returns the bookmark title.
func (w *WebBookmark) Title() string { return w.title }

// CreationTime returns the creation time in seconds since epoch, 0 if unset.
func (w *WebBookmark) CreationTime() int64 { return w.creationTime }

// Application returns the browser the bookmark belongs to.
func (w *WebBookmark) Application() string { return w.application }

// Attributes returns the open bag of extra attributes.
func (w *WebBookmark) Attributes() []Attribute { return w.attributes }

// WebBookmarkBuilder accumulates bookmark fields from classified key value
// pairs.
type WebBookmarkBuilder struct {
	bookmark WebBookmark
}

// NewWebBookmarkBuilder creates an empty web bookmark builder.
func NewWebBookmarkBuilder() *WebBookmarkBuilder {
	return &WebBookmarkBuilder{}
}

// SetURL sets the bookmarked web address.
func (b *WebBookmarkBuilder) SetURL(url string) { b.bookmark.url = url }

// SetTitle sets the bookmark title.
func (b *WebBookmarkBuilder) SetTitle(title string) { b.bookmark.title = title }

// SetCreationTime sets the creation time in seconds since epoch.
func (b *WebBookmarkBuilder) SetCreationTime(epoch int64) { b.bookmark.creationTime = epoch }

// SetApplication sets the browser the bookmark belongs to.
func (b *WebBookmarkBuilder) SetApplication(application string) {
	b.bookmark.application = application
}

// AddAttribute appends an attribute to the open bag.
func (b *WebBookmarkBuilder) AddAttribute(attribute Attribute) {
	b.bookmark.attributes = append(b.bookmark.attributes, attribute)
}

// HasRequiredFields reports whether the bookmark can be emitted. Only the
// URL field is needed.
func (b *WebBookmarkBuilder) HasRequiredFields() bool {
	return b.bookmark.url != ""
}

// Build moves the accumulated fields into an immutable bookmark record.
func (b *WebBookmarkBuilder) Build() *WebBookmark {
	bookmark := b.bookmark
	b.bookmark = WebBookmark{}
	return &bookmark
}
