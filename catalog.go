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

import "strings"

// AttrType names the attribute an untyped extra value is stored under in a
// record's attribute bag.
type AttrType string

// Attribute types used by the report catalogs.
const (
	AttrDeleted         AttrType = "deleted"
	AttrDirection       AttrType = "direction"
	AttrDomain          AttrType = "domain"
	AttrLocation        AttrType = "location"
	AttrName            AttrType = "name"
	AttrNamePerson      AttrType = "name_person"
	AttrPhoneNumber     AttrType = "phone_number"
	AttrPhoneNumberFrom AttrType = "phone_number_from"
	AttrPhoneNumberTo   AttrType = "phone_number_to"
	AttrProgName        AttrType = "application"
	AttrText            AttrType = "text"
	AttrTime            AttrType = "datetime"
	AttrTimeStart       AttrType = "datetime_start"
)

// Attribute is one entry of a record's open attribute bag. It holds values
// for keys that are recognized by a report catalog but have no structured
// record field.
type Attribute struct {
	Type  AttrType
	Value string
}

// Key is one recognized key of a report catalog. Attr names the attribute
// bag entry values of this key fall into when no switch case claims the key;
// keys with an empty Attr need either special processing or more data to
// decide and are dropped with a diagnostic.
type Key struct {
	Name string
	Attr AttrType
}

// Catalog is the closed set of keys one report format recognizes. Catalogs
// are static configuration, built once at startup.
type Catalog struct {
	keys map[string]Key
}

// NewCatalog builds a catalog from its keys.
func NewCatalog(keys ...Key) *Catalog {
	byName := make(map[string]Key, len(keys))
	for _, key := range keys {
		byName[key.Name] = key
	}
	return &Catalog{keys: byName}
}

// Contains reports whether the normalized name is a recognized key.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.keys[normalize(name)]
	return ok
}

// Lookup returns the catalog key for the normalized name.
func (c *Catalog) Lookup(name string) (Key, bool) {
	key, ok := c.keys[normalize(name)]
	return key, ok
}

// Recognized namespaces. A namespace line scopes all following keys of an
// entity to a role until the next namespace line.
const (
	NamespaceNone        = ""
	NamespaceFrom        = "from"
	NamespaceTo          = "to"
	NamespaceParticipant = "participant"
)

// NamespaceSet is the closed set of namespace labels one report format
// recognizes.
type NamespaceSet struct {
	names map[string]bool
}

// NewNamespaceSet builds a namespace set from its labels.
func NewNamespaceSet(names ...string) *NamespaceSet {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return &NamespaceSet{names: set}
}

// Contains reports whether the trimmed line, case-insensitively, is one of
// the recognized namespace labels.
func (s *NamespaceSet) Contains(line string) bool {
	return s.names[normalize(line)]
}

// Meta keys govern segmentation, not record content. They are excluded from
// ordinary field resolution in every report format.
const (
	metaReferenceNumber = "reference number"
	metaSegmentCount    = "segments"
	metaSegmentNumber   = "segment number"
)

func isMetaKey(name string) bool {
	switch normalize(name) {
	case metaReferenceNumber, metaSegmentCount, metaSegmentNumber:
		return true
	}
	return false
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
