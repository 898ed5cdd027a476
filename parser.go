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

// Direction of a communication record.
type Direction string

// Known directions.
const (
	DirectionUnknown  Direction = ""
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// ReadStatus of a message.
type ReadStatus string

// Known read statuses.
const (
	ReadStatusUnknown ReadStatus = ""
	ReadStatusRead    ReadStatus = "read"
	ReadStatusUnread  ReadStatus = "unread"
)

// ArtifactSink receives the records a parser reconstructs. Implementations
// own persistence and indexing. A sink error aborts the current report parse
// and is returned to the caller unretried.
type ArtifactSink interface {
	AddMessage(message *Message) error
	AddCallLog(call *Call) error
	AddContact(contact *Contact) error
	AddWebBookmark(bookmark *WebBookmark) error
}

// Parser parses one XRY report entity by entity and emits all reconstructed
// records to the sink. A Parser instance is good for a single report.
type Parser interface {
	Parse(reader *Reader, sink ArtifactSink) error
}

// ForReportType returns a parser for the report type named in a report file
// name, e.g. "Messages-SMS" or "Calls". The second return is false for
// unsupported report types.
func ForReportType(name string, log *slog.Logger) (Parser, bool) {
	switch normalize(name) {
	case "calls":
		return NewCallsParser(log), true
	case "contacts", "contacts-contacts":
		return NewContactsParser(log), true
	case "messages-sms", "sms-messages":
		return NewMessagesParser(log), true
	case "web-bookmarks":
		return NewBookmarksParser(log), true
	}
	return nil, false
}
