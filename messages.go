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
	"strings"

	"github.com/pkg/errors"
)

// Keys that need special routing in the messages format.
const (
	keyFrom    = "from"
	keyMessage = "message"
	keyNumber  = "number"
	keyStatus  = "status"
	keyTel     = "tel"
	keyText    = "text"
	keyTime    = "time"
	keyTo      = "to"
	keyType    = "type"
)

// All known keys of Messages-SMS reports. Keys without an attribute type
// either need special processing or more data to find a type.
var messageKeys = NewCatalog(
	Key{Name: "deleted", Attr: AttrDeleted},
	Key{Name: "direction", Attr: AttrDirection},
	Key{Name: "folder"},
	Key{Name: "from", Attr: AttrPhoneNumberFrom},
	Key{Name: "index"},
	Key{Name: "message", Attr: AttrText},
	Key{Name: "name"},
	Key{Name: "name (matched)", Attr: AttrNamePerson},
	Key{Name: "number"},
	Key{Name: "service center", Attr: AttrPhoneNumber},
	Key{Name: "status"},
	Key{Name: "storage"},
	Key{Name: "tel"},
	Key{Name: "text", Attr: AttrText},
	Key{Name: "time", Attr: AttrTime},
	Key{Name: "to", Attr: AttrPhoneNumberTo},
	Key{Name: "type"},
)

// All known namespaces of Messages-SMS reports.
var messageNamespaces = NewNamespaceSet(NamespaceFrom, NamespaceParticipant, NamespaceTo)

// MessagesParser parses Messages-SMS reports. Message entities have a few
// special properties: their text can span multiple lines and the underlying
// message from the device may be segmented across multiple entities. The
// parser reconstructs the segmented message and emits it as one record, which
// makes this by far the most involved report parser.
type MessagesParser struct {
	log *slog.Logger
}

// NewMessagesParser creates a parser for one Messages-SMS report.
func NewMessagesParser(log *slog.Logger) *MessagesParser {
	return &MessagesParser{log: log}
}

// CanProcess reports whether the pair's key is a recognized message key.
func (p *MessagesParser) CanProcess(pair KeyValuePair) bool {
	return messageKeys.Contains(pair.Key)
}

// IsNamespace reports whether the line is a recognized message namespace.
func (p *MessagesParser) IsNamespace(line string) bool {
	return messageNamespaces.Contains(line)
}

// Parse reads all entities of a Messages-SMS report and emits one message
// record per reconstructed message. The seen reference numbers of the segment
// stitcher are scoped to this single call.
func (p *MessagesParser) Parse(reader *Reader, sink ArtifactSink) error {
	p.log.Info("processing report", "report", reader.ReportPath())

	stitch := newStitcher(p.log)
	expand := func(pair KeyValuePair, entity Entity, value *strings.Builder) error {
		// 'text' and 'message' values can be segmented among multiple
		// entities.
		if pair.HasKey(keyText) || pair.HasKey(keyMessage) {
			return stitch.appendSegments(entity, reader, p.IsNamespace, value)
		}
		return nil
	}

	for reader.HasNext() {
		entity, err := reader.Next()
		if err != nil {
			return err
		}
		pairs, err := compileEntity(entity, p, p.log, expand)
		if err != nil {
			return err
		}

		builder := NewMessageBuilder()
		for _, pair := range pairs {
			p.addToBuilder(builder, pair)
		}
		if builder.IsEmpty() {
			continue
		}
		if err := sink.AddMessage(builder.Build()); err != nil {
			return errors.Wrapf(err, "could not create message artifact for entity %q", entity.Title())
		}
	}
	return reader.Err()
}

func (p *MessagesParser) addToBuilder(builder *MessageBuilder, pair KeyValuePair) {
	normalizedValue := normalize(pair.Value)

	switch pair.Key {
	case keyTel, keyNumber:
		switch pair.Namespace {
		case NamespaceFrom:
			builder.SetSenderID(pair.Value)
		case NamespaceTo, NamespaceParticipant:
			builder.AddRecipientID(pair.Value)
		default:
			builder.AddAttribute(Attribute{Type: AttrPhoneNumber, Value: pair.Value})
		}
	// Although confusing, as these are also namespaces, later versions of XRY
	// emit standardized "from" and "to" key lines instead.
	case keyFrom:
		builder.SetSenderID(pair.Value)
	case keyTo:
		builder.AddRecipientID(pair.Value)
	case keyTime:
		epoch, err := SecondsSinceEpoch(pair.Value)
		if err != nil {
			p.log.Warn("assumption about the date time format of messages is not right",
				"pair", pair.String(), "error", err)
			break
		}
		builder.SetDateTime(epoch)
	case keyType:
		switch normalizedValue {
		case "incoming":
			builder.SetDirection(DirectionIncoming)
		case "outgoing":
			builder.SetDirection(DirectionOutgoing)
		case "deliver", "submit", "status report":
			// ignored for now
		default:
			p.log.Warn("unrecognized value for type key", "pair", pair.String())
		}
	case keyStatus:
		switch normalizedValue {
		case "read":
			builder.SetReadStatus(ReadStatusRead)
		case "unread":
			builder.SetReadStatus(ReadStatusUnread)
		case "deleted":
			builder.AddAttribute(Attribute{Type: AttrDeleted, Value: pair.Value})
		case "sending failed", "unsent", "sent":
			// ignored for now
		default:
			p.log.Warn("unrecognized value for status key", "pair", pair.String())
		}
	case keyText, keyMessage:
		builder.SetText(pair.Value)
	default:
		key, _ := messageKeys.Lookup(pair.Key)
		if key.Attr == "" {
			p.log.Info("key was recognized but needs more data or time to implement, discarding",
				"pair", pair.String())
			break
		}
		builder.AddAttribute(Attribute{Type: key.Attr, Value: pair.Value})
	}
}

// Message is one reconstructed message record, immutable once built.
type Message struct {
	direction  Direction
	senderID   string
	recipients []string
	dateTime   int64
	readStatus ReadStatus
	subject    string
	text       string
	threadID   string
	attributes []Attribute
}

// Direction returns the communication direction.
func (m *Message) Direction() Direction { return m.direction }

// SenderID returns the sender id, usually a phone number.
func (m *Message) SenderID() string { return m.senderID }

// RecipientIDs returns all recipient ids.
func (m *Message) RecipientIDs() []string { return m.recipients }

// DateTime returns the message time in seconds since epoch, 0 if unset.
func (m *Message) DateTime() int64 { return m.dateTime }

// ReadStatus returns the read status of the message.
func (m *Message) ReadStatus() ReadStatus { return m.readStatus }

// Subject returns the message subject.
func (m *Message) Subject() string { return m.subject }

// Text returns the reconstructed message text.
func (m *Message) Text() string { return m.text }

// ThreadID returns the message thread id.
func (m *Message) ThreadID() string { return m.threadID }

// Attributes returns the open bag of extra attributes.
func (m *Message) Attributes() []Attribute { return m.attributes }

// MessageBuilder accumulates message fields from classified key value pairs.
type MessageBuilder struct {
	message Message
}

// NewMessageBuilder creates an empty message builder.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{}
}

// SetDirection sets the communication direction.
func (b *MessageBuilder) SetDirection(direction Direction) { b.message.direction = direction }

// SetSenderID sets the sender id.
func (b *MessageBuilder) SetSenderID(senderID string) { b.message.senderID = senderID }

// AddRecipientID appends a recipient id.
func (b *MessageBuilder) AddRecipientID(recipientID string) {
	b.message.recipients = append(b.message.recipients, recipientID)
}

// SetDateTime sets the message time in seconds since epoch.
func (b *MessageBuilder) SetDateTime(epoch int64) { b.message.dateTime = epoch }

// SetReadStatus sets the read status.
func (b *MessageBuilder) SetReadStatus(status ReadStatus) { b.message.readStatus = status }

// SetSubject sets the message subject.
func (b *MessageBuilder) SetSubject(subject string) { b.message.subject = subject }

// SetText sets the message text.
func (b *MessageBuilder) SetText(text string) { b.message.text = text }

// SetThreadID sets the message thread id.
func (b *MessageBuilder) SetThreadID(threadID string) { b.message.threadID = threadID }

// AddAttribute appends an attribute to the open bag.
func (b *MessageBuilder) AddAttribute(attribute Attribute) {
	b.message.attributes = append(b.message.attributes, attribute)
}

// IsEmpty reports whether no field was set. Empty messages are not emitted.
func (b *MessageBuilder) IsEmpty() bool {
	m := &b.message
	return m.direction == DirectionUnknown && m.senderID == "" &&
		len(m.recipients) == 0 && m.dateTime == 0 &&
		m.readStatus == ReadStatusUnknown && m.subject == "" && m.text == "" &&
		m.threadID == "" && len(m.attributes) == 0
}

// Build moves the accumulated fields into an immutable message.
func (b *MessageBuilder) Build() *Message {
	message := b.message
	b.message = Message{}
	return &message
}
