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

// Package xry parses reports exported by the MSAB XRY mobile extraction tool
// and reconstructs communication records from them.
//
// The XRY report format
//
// An XRY report is a plain text export organized as discrete blocks of lines
// called entities. Each entity corresponds to one logical record and
// implements the following conventions:
//     - The first line of an entity is a title, e.g. "Calls #1".
//     - All further lines are key value pairs of the form "[key]  value".
//     - A line holding only a bare label (e.g. "From", "To") is a namespace
//       that scopes all following keys until the next namespace line.
//     - Values may wrap across physical lines; continuation lines carry
//       neither brackets nor a namespace label.
//     - A long message may be segmented across several consecutive entities
//       that share a "reference number" and carry ascending "segment number"
//       values.
//
// Parsing
//
// Each report type (Messages-SMS, Calls, Contacts, Web-Bookmarks) has its own
// parser with a closed catalog of recognized keys and namespaces. Parsers read
// entities from a Reader, compile them into key value pairs and emit the
// resulting records to an ArtifactSink:
//     reader := xry.NewReader(file, "Messages-SMS.txt")
//     parser := xry.NewMessagesParser(logger)
//     err := parser.Parse(reader, sink)
// Records that remain empty after compilation are dropped. Malformed lines,
// unrecognized keys and segmentation anomalies are logged and skipped, they
// never abort a report.
package xry
