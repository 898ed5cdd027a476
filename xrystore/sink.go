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
	"github.com/pkg/errors"

	"github.com/forensicanalysis/xry"
)

var _ xry.ArtifactSink = &Store{}

// AddMessage stores a reconstructed message.
func (store *Store) AddMessage(message *xry.Message) error {
	element := NewMessage()
	element.Direction = string(message.Direction())
	element.Sender = message.SenderID()
	element.Recipients = message.RecipientIDs()
	element.DateTime = message.DateTime()
	element.ReadStatus = string(message.ReadStatus())
	element.Subject = message.Subject()
	element.Text = message.Text()
	element.ThreadID = message.ThreadID()
	element.Attributes = attributeMap(message.Attributes())

	_, err := store.InsertStruct(element)
	return errors.Wrap(err, "could not store message")
}

// AddCallLog stores a reconstructed call.
func (store *Store) AddCallLog(call *xry.Call) error {
	element := NewCallLog()
	element.Direction = string(call.Direction())
	element.Caller = call.CallerID()
	element.Callees = call.CalleeIDs()
	element.StartTime = call.StartTime()
	element.EndTime = call.EndTime()
	element.Attributes = attributeMap(call.Attributes())

	_, err := store.InsertStruct(element)
	return errors.Wrap(err, "could not store call log")
}

// AddContact stores a reconstructed contact.
func (store *Store) AddContact(contact *xry.Contact) error {
	element := NewContact()
	element.Name = contact.Name()
	element.Phone = contact.PhoneNumber()
	element.HomePhone = contact.HomePhoneNumber()
	element.MobilePhone = contact.MobilePhoneNumber()
	element.Email = contact.EmailAddress()
	element.Attributes = attributeMap(contact.Attributes())

	_, err := store.InsertStruct(element)
	return errors.Wrap(err, "could not store contact")
}

// AddWebBookmark stores a reconstructed web bookmark.
func (store *Store) AddWebBookmark(bookmark *xry.WebBookmark) error {
	element := NewWebBookmark()
	element.URL = bookmark.URL()
	element.Title = bookmark.Title()
	element.CreationTime = bookmark.CreationTime()
	element.Application = bookmark.Application()
	element.Attributes = attributeMap(bookmark.Attributes())

	_, err := store.InsertStruct(element)
	return errors.Wrap(err, "could not store web bookmark")
}

// attributeMap folds the remaining attributes into a map. Repeated attribute
// types turn into lists.
func attributeMap(attributes []xry.Attribute) map[string]interface{} {
	if len(attributes) == 0 {
		return nil
	}

	m := map[string]interface{}{}
	for _, attribute := range attributes {
		key := string(attribute.Type)
		switch existing := m[key].(type) {
		case nil:
			m[key] = attribute.Value
		case string:
			m[key] = []interface{}{existing, attribute.Value}
		case []interface{}:
			m[key] = append(existing, attribute.Value)
		}
	}
	return m
}
