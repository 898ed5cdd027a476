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

import "github.com/google/uuid"

// JSONElement is a single entry in the database.
type JSONElement []byte

// Element is a generic unmarshaled entry.
type Element map[string]interface{}

// Message is a message artifact element.
type Message struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Direction  string                 `json:"direction,omitempty"`
	Sender     string                 `json:"sender,omitempty"`
	Recipients []string               `json:"recipients,omitempty"`
	DateTime   int64                  `json:"date_time,omitempty"`
	ReadStatus string                 `json:"read_status,omitempty"`
	Subject    string                 `json:"subject,omitempty"`
	Text       string                 `json:"text,omitempty"`
	ThreadID   string                 `json:"thread_id,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// NewMessage creates a new message artifact element.
func NewMessage() *Message {
	return &Message{ID: "message--" + uuid.New().String(), Type: "message"}
}

// CallLog is a call log artifact element.
type CallLog struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Direction  string                 `json:"direction,omitempty"`
	Caller     string                 `json:"caller,omitempty"`
	Callees    []string               `json:"callees,omitempty"`
	StartTime  int64                  `json:"start_time,omitempty"`
	EndTime    int64                  `json:"end_time,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// NewCallLog creates a new call log artifact element.
func NewCallLog() *CallLog {
	return &CallLog{ID: "calllog--" + uuid.New().String(), Type: "calllog"}
}

// Contact is a contact artifact element.
type Contact struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	Name        string                 `json:"name,omitempty"`
	Phone       string                 `json:"phone,omitempty"`
	HomePhone   string                 `json:"home_phone,omitempty"`
	MobilePhone string                 `json:"mobile_phone,omitempty"`
	Email       string                 `json:"email,omitempty"`
	Attributes  map[string]interface{} `json:"attributes,omitempty"`
}

// NewContact creates a new contact artifact element.
func NewContact() *Contact {
	return &Contact{ID: "contact--" + uuid.New().String(), Type: "contact"}
}

// WebBookmark is a web bookmark artifact element.
type WebBookmark struct {
	ID           string                 `json:"id"`
	Type         string                 `json:"type"`
	URL          string                 `json:"url,omitempty"`
	Title        string                 `json:"title,omitempty"`
	CreationTime int64                  `json:"creation_time,omitempty"`
	Application  string                 `json:"application,omitempty"`
	Attributes   map[string]interface{} `json:"attributes,omitempty"`
}

// NewWebBookmark creates a new web bookmark artifact element.
func NewWebBookmark() *WebBookmark {
	return &WebBookmark{ID: "web-bookmark--" + uuid.New().String(), Type: "web-bookmark"}
}
