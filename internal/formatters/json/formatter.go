// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"swmeta/internal/formatters"
	"swmeta/internal/metadata"
)

func init() {
	formatters.Register(NewFormatter())
}

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// response is the JSON document shape. Unlike the text report, all fields
// are included, empty-valued ones too, so consumers can rely on key
// presence.
type response struct {
	Fields      map[string]string `json:"fields"`
	FieldsFound int               `json:"fields_found"`
	Diagnostics []string          `json:"diagnostics,omitempty"`
}

func (f *Formatter) Format(report *metadata.Report, options formatters.FormatterOptions) (string, error) {
	resp := response{
		Fields:      report.Fields(),
		FieldsFound: report.NonEmptyCount(),
	}
	if options.Verbose {
		for _, diag := range report.Diagnostics() {
			resp.Diagnostics = append(resp.Diagnostics, diag.String())
		}
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("formatting JSON: %w", err)
	}
	return string(data), nil
}
