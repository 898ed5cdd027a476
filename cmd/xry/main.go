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

// Package main implements the xry command line tool with various subcommands
// to parse XRY reports and handle the resulting artifact stores.
//     parse     Parse all XRY reports in a directory into a store
//     element   Edit the store (insert, get, select, query, all)
//     validate  Validate a store
//
// Usage
//
// Parse an extraction
//     xry parse ./extraction my.sqlite
// Fetch artifacts
//     xry element select message my.sqlite > messages.json
//     xry element all my.sqlite > export.json
// Validate a store
//     xry validate my.sqlite
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forensicanalysis/xry/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xry",
		Short: "Parse XRY reports and handle the resulting artifact stores",
	}
	rootCmd.AddCommand(cmd.Parse(), cmd.Element(), cmd.Validate())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
