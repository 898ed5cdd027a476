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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesParserParse(t *testing.T) {
	report := `XRY Report
Messages-SMS

SMS Message #1
[Time] 1/3/1990 1:23:54 AM UTC+4 (Device)
[Type] Incoming
[Status] Read
From
[Tel] +15554449311
[Text] Hello
world

SMS Message #2
[Type] Deliver
[Storage] SIM
`
	sink := &recordingSink{}
	err := NewMessagesParser(testLogger()).Parse(newTestReader(report), sink)
	require.NoError(t, err)
	require.Len(t, sink.messages, 1)

	message := sink.messages[0]
	assert.Equal(t, DirectionIncoming, message.Direction())
	assert.Equal(t, ReadStatusRead, message.ReadStatus())
	assert.Equal(t, "+15554449311", message.SenderID())
	assert.Equal(t, int64(631315434), message.DateTime())
	assert.Equal(t, "Hello world", message.Text())
}

func TestMessagesParserNamespaces(t *testing.T) {
	report := `SMS Message #1
From
[Tel] 111
To
[Tel] 222
Participant
[Number] 333
[Tel] 444
`
	sink := &recordingSink{}
	err := NewMessagesParser(testLogger()).Parse(newTestReader(report), sink)
	require.NoError(t, err)
	require.Len(t, sink.messages, 1)

	message := sink.messages[0]
	assert.Equal(t, "111", message.SenderID())
	assert.Equal(t, []string{"222", "333", "444"}, message.RecipientIDs())
}

func TestMessagesParserStandardizedFromTo(t *testing.T) {
	report := `SMS Message #1
[From] 111
[To] 222
[Message] short text
`
	sink := &recordingSink{}
	err := NewMessagesParser(testLogger()).Parse(newTestReader(report), sink)
	require.NoError(t, err)
	require.Len(t, sink.messages, 1)

	message := sink.messages[0]
	assert.Equal(t, "111", message.SenderID())
	assert.Equal(t, []string{"222"}, message.RecipientIDs())
	assert.Equal(t, "short text", message.Text())
}

func TestMessagesParserDiscards(t *testing.T) {
	report := `SMS Message #1
[Bogus Key] some value
[Folder]
[Status] Sending Failed
[Tel] 555
this is not a pair
`
	sink := &recordingSink{}
	err := NewMessagesParser(testLogger()).Parse(newTestReader(report), sink)
	require.NoError(t, err)
	require.Len(t, sink.messages, 1)

	// the unscoped tel becomes an attribute, everything else is discarded
	message := sink.messages[0]
	assert.Equal(t, "", message.SenderID())
	assert.Empty(t, message.RecipientIDs())
	assert.Equal(t, []Attribute{{Type: AttrPhoneNumber, Value: "555 this is not a pair"}}, message.Attributes())
}

func TestMessagesParserBadTime(t *testing.T) {
	report := `SMS Message #1
[Time] yesterday evening
[Text] hi
`
	sink := &recordingSink{}
	err := NewMessagesParser(testLogger()).Parse(newTestReader(report), sink)
	require.NoError(t, err)
	require.Len(t, sink.messages, 1)

	// an unparsable time is dropped with a diagnostic, not fatal
	assert.Equal(t, int64(0), sink.messages[0].DateTime())
	assert.Equal(t, "hi", sink.messages[0].Text())
}

func TestMessagesParserEmptyEntities(t *testing.T) {
	report := `XRY Report
Messages-SMS

SMS Message #1
[Storage] SIM
[Index] 4
`
	sink := &recordingSink{}
	err := NewMessagesParser(testLogger()).Parse(newTestReader(report), sink)
	require.NoError(t, err)
	assert.Empty(t, sink.messages)
}
