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
	"strconv"
)

// All known keys of Calls reports.
var callKeys = NewCatalog(
	Key{Name: "call type"},
	Key{Name: "deleted", Attr: AttrDeleted},
	Key{Name: "direction"},
	Key{Name: "duration"},
	Key{Name: "from"},
	Key{Name: "index"},
	Key{Name: "name", Attr: AttrName},
	Key{Name: "name (matched)", Attr: AttrName},
	Key{Name: "number"},
	Key{Name: "storage"},
	Key{Name: "tel"},
	Key{Name: "time"},
	Key{Name: "to"},
	Key{Name: "type"},
)

// All known namespaces of Calls reports.
var callNamespaces = NewNamespaceSet(NamespaceFrom, NamespaceTo)

// CallsParser parses Calls reports.
type CallsParser struct {
	singleEntityParser
}

// NewCallsParser creates a parser for one Calls report.
func NewCallsParser(log *slog.Logger) *CallsParser {
	p := &CallsParser{}
	p.singleEntityParser = singleEntityParser{format: p, log: log}
	return p
}

// CanProcess reports whether the pair's key is a recognized call key.
func (p *CallsParser) CanProcess(pair KeyValuePair) bool {
	return callKeys.Contains(pair.Key)
}

// IsNamespace reports whether the line is a recognized call namespace.
func (p *CallsParser) IsNamespace(line string) bool {
	return callNamespaces.Contains(line)
}

// MakeArtifact builds a call log record from the compiled pairs of one
// entity. When neither a caller nor callees were found, the record degrades
// to its remaining attributes and is still emitted unless nothing is left.
func (p *CallsParser) MakeArtifact(pairs []KeyValuePair, sink ArtifactSink) error {
	builder := NewCallBuilder()
	for _, pair := range pairs {
		p.addToBuilder(builder, pair)
	}
	call := builder.Build()

	if call.callerID != "" || len(call.callees) > 0 {
		return sink.AddCallLog(call)
	}

	// No caller or callee. Fold direction and start time into the attribute
	// bag and emit an attribute-only record with what we've got.
	fallback := NewCallBuilder()
	if call.direction != DirectionUnknown {
		fallback.AddAttribute(Attribute{Type: AttrDirection, Value: string(call.direction)})
	}
	if call.startTime > 0 {
		fallback.AddAttribute(Attribute{Type: AttrTimeStart, Value: strconv.FormatInt(call.startTime, 10)})
	}
	for _, attribute := range call.attributes {
		fallback.AddAttribute(attribute)
	}
	if fallback.IsEmpty() {
		return nil
	}
	return sink.AddCallLog(fallback.Build())
}

func (p *CallsParser) addToBuilder(builder *CallBuilder, pair KeyValuePair) {
	switch pair.Key {
	case keyTel, keyNumber:
		switch pair.Namespace {
		case NamespaceFrom:
			builder.SetCallerID(pair.Value)
		case NamespaceTo:
			builder.AddCalleeID(pair.Value)
		default:
			builder.AddAttribute(Attribute{Type: AttrPhoneNumber, Value: pair.Value})
		}
	// Although confusing, as these are also namespaces, later versions of XRY
	// emit standardized "from" and "to" key lines instead.
	case keyFrom:
		builder.SetCallerID(pair.Value)
	case keyTo:
		builder.AddCalleeID(pair.Value)
	case keyTime:
		epoch, err := SecondsSinceEpoch(pair.Value)
		if err != nil {
			p.log.Warn("assumption about the date time format of call logs is not right",
				"value", pair.Value, "error", err)
			break
		}
		builder.SetStartTime(epoch)
	case "direction":
		if normalize(pair.Value) == "incoming" {
			builder.SetDirection(DirectionIncoming)
		} else {
			builder.SetDirection(DirectionOutgoing)
		}
	default:
		key, _ := callKeys.Lookup(pair.Key)
		if key.Attr == "" {
			p.log.Info("key was recognized but needs more data or time to implement, discarding",
				"pair", pair.String())
			break
		}
		builder.AddAttribute(Attribute{Type: key.Attr, Value: pair.Value})
	}
}

// Call is one call log record, immutable once built.
type Call struct {
	direction  Direction
	callerID   string
	callees    []string
	startTime  int64
	endTime    int64
	attributes []Attribute
}

// Direction returns the call direction.
func (c *Call) Direction() Direction { return c.direction }

// CallerID returns the structured caller id. Additional caller numbers end
// up in the attribute bag.
func (c *Call) CallerID() string { return c.callerID }

// CalleeIDs returns all callee ids.
func (c *Call) CalleeIDs() []string { return c.callees }

// StartTime returns the call start in seconds since epoch, 0 if unset.
func (c *Call) StartTime() int64 { return c.startTime }

// EndTime returns the call end in seconds since epoch. Calls reports carry
// no end time, the field exists for the sink contract.
func (c *Call) EndTime() int64 { return c.endTime }

// Attributes returns the open bag of extra attributes.
func (c *Call) Attributes() []Attribute { return c.attributes }

// CallBuilder accumulates call fields from classified key value pairs.
type CallBuilder struct {
	call Call
}

// NewCallBuilder creates an empty call builder.
func NewCallBuilder() *CallBuilder {
	return &CallBuilder{}
}

// SetDirection sets the call direction.
func (b *CallBuilder) SetDirection(direction Direction) { b.call.direction = direction }

// SetCallerID promotes the first caller id to the structured field. Repeated
// caller ids become attributes so that multiple "from" numbers are not
// silently lost.
func (b *CallBuilder) SetCallerID(callerID string) {
	if b.call.callerID != "" {
		b.AddAttribute(Attribute{Type: AttrPhoneNumberFrom, Value: callerID})
		return
	}
	b.call.callerID = callerID
}

// AddCalleeID appends a callee id.
func (b *CallBuilder) AddCalleeID(calleeID string) {
	b.call.callees = append(b.call.callees, calleeID)
}

// SetStartTime sets the call start in seconds since epoch.
func (b *CallBuilder) SetStartTime(epoch int64) { b.call.startTime = epoch }

// AddAttribute appends an attribute to the open bag.
func (b *CallBuilder) AddAttribute(attribute Attribute) {
	b.call.attributes = append(b.call.attributes, attribute)
}

// IsEmpty reports whether no field was set. Empty calls are not emitted.
func (b *CallBuilder) IsEmpty() bool {
	c := &b.call
	return c.direction == DirectionUnknown && c.callerID == "" &&
		len(c.callees) == 0 && c.startTime == 0 && c.endTime == 0 &&
		len(c.attributes) == 0
}

// Build moves the accumulated fields into an immutable call record.
func (b *CallBuilder) Build() *Call {
	call := b.call
	b.call = Call{}
	return &call
}
