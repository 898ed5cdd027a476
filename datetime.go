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
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	deviceLocale  = "(device)"
	networkLocale = "(network)"
)

// timestampLayout matches the date and time portion of XRY timestamps, e.g.
// "1/3/1990 1:23:54 AM". The trailing zone token ("UTC+4", "GMT-7", "+04:00",
// optionally parenthesized) is resolved separately; Go reference layouts
// cannot express the localized GMT offset form.
const timestampLayout = "1/2/2006 3:4:5 PM"

// SecondsSinceEpoch normalizes a report timestamp to seconds since the Unix
// epoch. Timestamps have the form
//
//	1/3/1990 1:23:54 AM UTC+4 (Device)
//
// where both the zone token and the trailing (Device)/(Network) locale
// annotation are optional. UTC is substituted with GMT, the two differ by at
// most one second. A timestamp without any zone information is assumed GMT+0.
func SecondsSinceEpoch(value string) (int64, error) {
	cleaned := strings.TrimSpace(removeLocale(value))
	cleaned = strings.ReplaceAll(cleaned, "UTC", "GMT")

	fields := strings.Fields(cleaned)
	if len(fields) < 3 {
		return 0, errors.Errorf("timestamp %q does not match the expected format", value)
	}

	datetime := fields[0] + " " + fields[1] + " " + strings.ToUpper(fields[2])
	local, err := time.Parse(timestampLayout, datetime)
	if err != nil {
		return 0, errors.Wrapf(err, "could not parse timestamp %q", value)
	}

	location := time.FixedZone("GMT", 0)
	if len(fields) > 3 {
		location, err = parseZone(fields[3])
		if err != nil {
			return 0, err
		}
	}

	return time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), 0, location).Unix(), nil
}

// removeLocale strips a trailing (Device) or (Network) annotation, everything
// from the marker onward is removed.
func removeLocale(value string) string {
	result := value
	if i := strings.Index(strings.ToLower(result), deviceLocale); i != -1 {
		result = result[:i]
	}
	if i := strings.Index(strings.ToLower(result), networkLocale); i != -1 {
		result = result[:i]
	}
	return result
}

// parseZone resolves a zone token like "GMT+4", "GMT-07:00", "+04:00" or
// "(GMT+4)" into a fixed-offset location.
func parseZone(token string) (*time.Location, error) {
	name := strings.Trim(token, "()")
	rest := strings.TrimPrefix(name, "GMT")
	if rest == "" || rest == "Z" {
		return time.FixedZone("GMT", 0), nil
	}

	sign := 1
	switch rest[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return nil, errors.Errorf("unrecognized zone %q", token)
	}

	var hours, minutes int
	var err error
	digits := rest[1:]
	switch {
	case strings.Contains(digits, ":"):
		parts := strings.SplitN(digits, ":", 2)
		hours, err = strconv.Atoi(parts[0])
		if err == nil {
			minutes, err = strconv.Atoi(parts[1])
		}
	case len(digits) == 4:
		hours, err = strconv.Atoi(digits[:2])
		if err == nil {
			minutes, err = strconv.Atoi(digits[2:])
		}
	default:
		hours, err = strconv.Atoi(digits)
	}
	if err != nil || hours > 18 || minutes > 59 {
		return nil, errors.Errorf("unrecognized zone offset %q", token)
	}

	return time.FixedZone(name, sign*(hours*3600+minutes*60)), nil
}
