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

func TestCallsParserParse(t *testing.T) {
	report := `XRY Report
Calls

Call #1
[Time] 1/3/1990 1:23:54 AM UTC+4
[Direction] Incoming
From
[Tel] +15554449311
To
[Tel] +15553331111
[Tel] +15552221111

Call #2
[Direction] Outgoing
[Number] 911
`
	sink := &recordingSink{}
	err := NewCallsParser(testLogger()).Parse(newTestReader(report), sink)
	require.NoError(t, err)
	require.Len(t, sink.calls, 2)

	call := sink.calls[0]
	assert.Equal(t, DirectionIncoming, call.Direction())
	assert.Equal(t, "+15554449311", call.CallerID())
	assert.Equal(t, []string{"+15553331111", "+15552221111"}, call.CalleeIDs())
	assert.Equal(t, int64(631315434), call.StartTime())

	// the unscoped number is kept as an attribute only
	call = sink.calls[1]
	assert.Equal(t, "", call.CallerID())
	assert.Empty(t, call.CalleeIDs())
	assert.Equal(t, []Attribute{
		{Type: AttrDirection, Value: "outgoing"},
		{Type: AttrPhoneNumber, Value: "911"},
	}, call.Attributes())
}

func TestCallsParserCallerPromotion(t *testing.T) {
	report := `Call #1
From
[Tel] 111
[Tel] 222
`
	sink := &recordingSink{}
	err := NewCallsParser(testLogger()).Parse(newTestReader(report), sink)
	require.NoError(t, err)
	require.Len(t, sink.calls, 1)

	call := sink.calls[0]
	assert.Equal(t, "111", call.CallerID())
	assert.Equal(t, []Attribute{{Type: AttrPhoneNumberFrom, Value: "222"}}, call.Attributes())
}

func TestCallsParserFallback(t *testing.T) {
	// without caller and callees the record degrades to attributes
	report := `Call #1
[Time] 1/3/1990 1:23:54 AM UTC+4
[Direction] Missed
`
	sink := &recordingSink{}
	err := NewCallsParser(testLogger()).Parse(newTestReader(report), sink)
	require.NoError(t, err)
	require.Len(t, sink.calls, 1)

	call := sink.calls[0]
	assert.Equal(t, "", call.CallerID())
	assert.Equal(t, DirectionUnknown, call.Direction())
	assert.Equal(t, []Attribute{
		{Type: AttrDirection, Value: "outgoing"},
		{Type: AttrTimeStart, Value: "631315434"},
	}, call.Attributes())
}

func TestCallsParserStandardizedFromTo(t *testing.T) {
	report := `Call #1
[From] 111
[To] 222
`
	sink := &recordingSink{}
	err := NewCallsParser(testLogger()).Parse(newTestReader(report), sink)
	require.NoError(t, err)
	require.Len(t, sink.calls, 1)

	assert.Equal(t, "111", sink.calls[0].CallerID())
	assert.Equal(t, []string{"222"}, sink.calls[0].CalleeIDs())
}

func TestCallsParserEmptyEntities(t *testing.T) {
	report := `Call #1
[Storage] Device
[Index] 2
`
	sink := &recordingSink{}
	err := NewCallsParser(testLogger()).Parse(newTestReader(report), sink)
	require.NoError(t, err)
	assert.Empty(t, sink.calls)
}
