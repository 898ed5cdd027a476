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

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/forensicanalysis/fsdoublestar"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/forensicanalysis/xry"
	"github.com/forensicanalysis/xry/xrystore"
)

// Parse is the xry parse commandline subcommand
func Parse() *cobra.Command {
	var verbose bool
	parseCommand := &cobra.Command{
		Use:   "parse <reportdir> <store>",
		Short: "Parse all XRY reports in a directory into a store",
		Args:  cobra.ExactArgs(2), //nolint:gomnd
		RunE: func(cmd *cobra.Command, args []string) error {
			reportDir := cmd.Flags().Args()[0]
			storeName := cmd.Flags().Args()[1]

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelInfo
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			return parseReports(afero.NewOsFs(), reportDir, storeName, log)
		},
	}
	parseCommand.Flags().BoolVarP(&verbose, "verbose", "v", false, "log processing notes")
	return parseCommand
}

func parseReports(fs afero.Fs, reportDir, storeName string, log *slog.Logger) error {
	reportPaths, err := fsdoublestar.Glob(afero.NewIOFS(fs), path.Join(reportDir, "**/*.txt"))
	if err != nil {
		return errors.Wrap(err, "could not list reports")
	}

	store, err := xrystore.New(storeName)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, reportPath := range reportPaths {
		if err := parseReport(fs, reportPath, store, log); err != nil {
			return err
		}
	}
	return nil
}

func parseReport(fs afero.Fs, reportPath string, sink xry.ArtifactSink, log *slog.Logger) error {
	reportType := strings.TrimSuffix(path.Base(reportPath), path.Ext(reportPath))
	parser, ok := xry.ForReportType(reportType, log)
	if !ok {
		log.Info("skipping unsupported report", "report", reportPath)
		return nil
	}

	file, err := fs.Open(reportPath)
	if err != nil {
		return errors.Wrapf(err, "could not open report %s", reportPath)
	}
	defer file.Close()

	return parser.Parse(xry.NewReader(file, reportPath), sink)
}

// Element is the xry element commandline subcommand
func Element() *cobra.Command {
	elementCommand := &cobra.Command{
		Use:   "element",
		Short: "Manipulate the store via the commandline",
		Args:  requireOneStore,
	}
	elementCommand.AddCommand(getCommand(), selectCommand(), allCommand(), queryCommand(), insertCommand())
	return elementCommand
}

// Validate is the xry validate commandline subcommand
func Validate() *cobra.Command {
	var noFail bool
	validateCommand := &cobra.Command{
		Use:   "validate <store>",
		Short: "Validate all elements",
		Args:  cobra.ExactArgs(1), //nolint:gomnd
		RunE: func(cmd *cobra.Command, args []string) error {
			storeName := cmd.Flags().Args()[0]

			store, err := xrystore.Open(storeName)
			if err != nil {
				return err
			}
			defer store.Close()
			valErr, err := store.Validate()
			if err != nil {
				return err
			}
			if len(valErr) > 0 {
				for i, v := range valErr {
					valErr[i] = strings.Replace(v, "\"", "\\\"", -1)
				}
				fmt.Printf("[\"%s\"]\n", strings.Join(valErr, "\", \""))
				if noFail {
					return nil
				}
				return fmt.Errorf("%d elements are invalid", len(valErr))
			}
			return nil
		},
	}
	validateCommand.Flags().BoolVar(&noFail, "no-fail", false, "return exit code 0")
	return validateCommand
}

func requireOneStore(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("requires exactly one store")
	}
	for _, arg := range args {
		if _, err := os.Stat(arg); os.IsNotExist(err) {
			return errors.Wrap(os.ErrNotExist, arg)
		}
	}
	return nil
}
