// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"swmeta/internal/formatters"
	"swmeta/internal/metadata"

	"github.com/fatih/color"
)

func init() {
	formatters.Register(NewFormatter())
}

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"header":  color.New(color.FgWhite, color.Bold),
			"key":     color.New(color.FgCyan),
			"count":   color.New(color.FgGreen),
			"warning": color.New(color.FgYellow),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable key/value report"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

// Format renders the report as a sorted key/value listing. Empty-valued
// fields are excluded from the listing and from the trailing tally.
func (f *Formatter) Format(report *metadata.Report, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	if report.NonEmptyCount() == 0 {
		if options.Verbose && len(report.Diagnostics()) > 0 {
			var builder strings.Builder
			builder.WriteString("No metadata could be extracted.\n")
			f.appendDiagnostics(&builder, report)
			return builder.String(), nil
		}
		return "No metadata could be extracted.", nil
	}

	var builder strings.Builder
	builder.WriteString(f.colors["header"].Sprint("SolidWorks File Metadata:"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("=", 50))
	builder.WriteString("\n")

	for _, key := range report.SortedKeys() {
		value, _ := report.Get(key)
		if value == "" {
			continue
		}
		builder.WriteString(fmt.Sprintf("%s: %s\n", f.colors["key"].Sprintf("%-25s", key), value))
	}

	builder.WriteString("\n")
	builder.WriteString(f.colors["count"].Sprintf("Total metadata fields found: %d", report.NonEmptyCount()))
	builder.WriteString("\n")

	if options.Verbose && len(report.Diagnostics()) > 0 {
		f.appendDiagnostics(&builder, report)
	}

	return builder.String(), nil
}

// appendDiagnostics adds the per-field read failures to the output
func (f *Formatter) appendDiagnostics(builder *strings.Builder, report *metadata.Report) {
	builder.WriteString("\n")
	builder.WriteString(f.colors["warning"].Sprint("Diagnostics:"))
	builder.WriteString("\n")
	for _, diag := range report.Diagnostics() {
		builder.WriteString("  ")
		builder.WriteString(diag.String())
		builder.WriteString("\n")
	}
}
