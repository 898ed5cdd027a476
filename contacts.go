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

// All known keys of Contacts-Contacts reports.
var contactKeys = NewCatalog(
	Key{Name: "account name"},
	Key{Name: "address home", Attr: AttrLocation},
	Key{Name: "deleted", Attr: AttrDeleted},
	Key{Name: "email home"},
	Key{Name: "home"},
	Key{Name: "index"},
	Key{Name: "mobile"},
	Key{Name: "name"},
	Key{Name: "other"},
	Key{Name: "picture"},
	Key{Name: "related application", Attr: AttrProgName},
	Key{Name: "storage"},
	Key{Name: "tel"},
)

// ContactsParser parses Contacts-Contacts reports.
type ContactsParser struct {
	singleEntityParser
}

// NewContactsParser creates a parser for one Contacts-Contacts report.
func NewContactsParser(log *slog.Logger) *ContactsParser {
	p := &ContactsParser{}
	p.singleEntityParser = singleEntityParser{format: p, log: log}
	return p
}

// CanProcess reports whether the pair's key is a recognized contact key.
func (p *ContactsParser) CanProcess(pair KeyValuePair) bool {
	return contactKeys.Contains(pair.Key)
}

// IsNamespace always returns false, no namespaces are currently known for
// this report type.
func (p *ContactsParser) IsNamespace(string) bool {
	return false
}

// MakeArtifact builds a contact record from the compiled pairs of one entity
// and emits it unless it is empty.
func (p *ContactsParser) MakeArtifact(pairs []KeyValuePair, sink ArtifactSink) error {
	builder := NewContactBuilder()
	for _, pair := range pairs {
		p.addToBuilder(builder, pair)
	}
	if builder.IsEmpty() {
		return nil
	}
	return sink.AddContact(builder.Build())
}

func (p *ContactsParser) addToBuilder(builder *ContactBuilder, pair KeyValuePair) {
	switch pair.Key {
	case "name":
		builder.SetName(pair.Value)
	case keyTel:
		builder.SetPhoneNumber(pair.Value)
	case "mobile":
		builder.SetMobilePhoneNumber(pair.Value)
	case "home":
		builder.SetHomePhoneNumber(pair.Value)
	case "email home":
		builder.SetEmailAddress(pair.Value)
	default:
		key, _ := contactKeys.Lookup(pair.Key)
		if key.Attr == "" {
			p.log.Info("key was recognized but needs more data or time to implement, discarding",
				"pair", pair.String())
			break
		}
		builder.AddAttribute(Attribute{Type: key.Attr, Value: pair.Value})
	}
}

// Contact is one contact record, immutable once built.
type Contact struct {
	name        string
	phone       string
	homePhone   string
	mobilePhone string
	email       string
	attributes  []Attribute
}

// Name returns the contact name.
func (c *Contact) Name() string { return c.name }

// PhoneNumber returns the general phone number.
func (c *Contact) PhoneNumber() string { return c.phone }

// HomePhoneNumber returns the home phone number.
func (c *Contact) HomePhoneNumber() string { return c.homePhone }

// MobilePhoneNumber returns the mobile phone number.
func (c *Contact) MobilePhoneNumber() string { return c.mobilePhone }

// EmailAddress returns the email address.
func (c *Contact) EmailAddress() string { return c.email }

// Attributes returns the open bag of extra attributes.
func (c *Contact) Attributes() []Attribute { return c.attributes }

// ContactBuilder accumulates contact fields from classified key value pairs.
type ContactBuilder struct {
	contact Contact
}

// NewContactBuilder creates an empty contact builder.
func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{}
}

// SetName sets the contact name.
func (b *ContactBuilder) SetName(name string) { b.contact.name = name }

// SetPhoneNumber sets the general phone number.
func (b *ContactBuilder) SetPhoneNumber(phone string) { b.contact.phone = phone }

// SetHomePhoneNumber sets the home phone number.
func (b *ContactBuilder) SetHomePhoneNumber(phone string) { b.contact.homePhone = phone }

// SetMobilePhoneNumber sets the mobile phone number.
func (b *ContactBuilder) SetMobilePhoneNumber(phone string) { b.contact.mobilePhone = phone }

// SetEmailAddress sets the email address.
func (b *ContactBuilder) SetEmailAddress(email string) { b.contact.email = email }

// AddAttribute appends an attribute to the open bag.
func (b *ContactBuilder) AddAttribute(attribute Attribute) {
	b.contact.attributes = append(b.contact.attributes, attribute)
}

// IsEmpty reports whether no field was set. Empty contacts are not emitted.
func (b *ContactBuilder) IsEmpty() bool {
	c := &b.contact
	return c.name == "" && c.phone == "" && c.homePhone == "" &&
		c.mobilePhone == "" && c.email == "" && len(c.attributes) == 0
}

// Build moves the accumulated fields into an immutable contact record.
func (b *ContactBuilder) Build() *Contact {
	contact := b.contact
	b.contact = Contact{}
	return &contact
}
