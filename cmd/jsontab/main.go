package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drellem/jsontab"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		target     string
		encode     bool
		escape     bool
		fieldNames string
		missing    string
		tableAttrs string
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "jsontab <data>",
		Short:        "jsontab converts JSON values to HTML, R, Wolfram Language, and more",
		Long: `jsontab converts a JSON value into one of several textual targets:
HTML table markup, R data-frame source, Wolfram Language literals, JSON,
YAML, CSV/TSV, or a plain-text table.

The data argument is JSON text, or the path of a file containing JSON.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.WarnLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			jsontab.SetLogger(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				Prefix: "jsontab",
				Level:  level,
			}))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data := args[0]
			if fi, err := os.Stat(data); err == nil && !fi.IsDir() {
				raw, err := os.ReadFile(data)
				if err != nil {
					return err
				}
				data = string(raw)
			}
			opts := jsontab.Options{
				TableAttributes: tableAttrs,
				Encode:          encode,
				Escape:          escape,
				MissingValue:    jsontab.Text(missing),
			}
			if fieldNames != "" {
				opts.FieldNames = strings.Split(fieldNames, ";")
			}
			out, err := jsontab.ConvertString(data, target, opts)
			if err != nil {
				if errors.Is(err, jsontab.ErrUnsupportedTarget) {
					// Diagnostic already emitted; no output, soft failure.
					return nil
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	root.Flags().StringVar(&target, "target", "html", "output target (html, r, wl, json, yaml, csv, tsv, table)")
	root.Flags().BoolVar(&encode, "encode", false, "percent-encode scalar text")
	root.Flags().BoolVar(&escape, "escape", false, "escape target-syntax characters in scalar text")
	root.Flags().StringVar(&fieldNames, "field-names", "", "semicolon-separated column names")
	root.Flags().StringVar(&missing, "missing-value", "", "sentinel for absent keys during normalization")
	root.Flags().StringVar(&tableAttrs, "table-attributes", "", "attribute string for the outermost HTML table tag")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root.Execute()
}
