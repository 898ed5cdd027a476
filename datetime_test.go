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

import "testing"

func TestSecondsSinceEpoch(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{"utc offset", "1/3/1990 1:23:54 AM UTC+4", 631315434, false},
		{"gmt offset", "1/3/1990 1:23:54 AM GMT+4", 631315434, false},
		{"device locale", "1/3/1990 1:23:54 AM UTC+4 (Device)", 631315434, false},
		{"network locale", "1/3/1990 1:23:54 AM UTC+4 (Network)", 631315434, false},
		{"parenthesized zone", "1/3/1990 1:23:54 AM (UTC+4)", 631315434, false},
		{"colon offset", "1/3/1990 1:23:54 AM +04:00", 631315434, false},
		{"compact offset", "1/3/1990 1:23:54 AM +0400", 631315434, false},
		{"no zone", "1/3/1990 1:23:54 AM", 631329834, false},
		{"bare utc", "1/3/1990 1:23:54 AM UTC", 631329834, false},
		{"pm negative offset", "1/3/1990 1:23:54 PM GMT-07:00", 631398234, false},
		{"lowercase meridiem", "1/3/1990 1:23:54 am UTC+4", 631315434, false},
		{"padded", "  1/3/1990 1:23:54 AM UTC+4  ", 631315434, false},
		{"empty", "", 0, true},
		{"garbage", "garbage", 0, true},
		{"missing time", "1/3/1990", 0, true},
		{"month out of range", "13/3/1990 1:23:54 AM", 0, true},
		{"offset out of range", "1/3/1990 1:23:54 AM UTC+24", 0, true},
		{"unrecognized zone", "1/3/1990 1:23:54 AM CEST", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SecondsSinceEpoch(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SecondsSinceEpoch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SecondsSinceEpoch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoveLocale(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"device", "1/3/1990 1:23:54 AM (Device)", "1/3/1990 1:23:54 AM "},
		{"network", "1/3/1990 1:23:54 AM (Network)", "1/3/1990 1:23:54 AM "},
		{"mixed case", "1/3/1990 1:23:54 AM (DEVICE)", "1/3/1990 1:23:54 AM "},
		{"none", "1/3/1990 1:23:54 AM", "1/3/1990 1:23:54 AM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := removeLocale(tt.value); got != tt.want {
				t.Errorf("removeLocale() = %q, want %q", got, tt.want)
			}
		})
	}
}
