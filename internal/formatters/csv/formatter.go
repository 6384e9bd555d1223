// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strings"

	"swmeta/internal/formatters"
	"swmeta/internal/metadata"
)

func init() {
	formatters.Register(NewFormatter())
}

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated key/value pairs"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(report *metadata.Report, options formatters.FormatterOptions) (string, error) {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	if err := writer.Write([]string{"Key", "Value"}); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}
	for _, key := range report.SortedKeys() {
		value, _ := report.Get(key)
		if err := writer.Write([]string{key, value}); err != nil {
			return "", fmt.Errorf("writing CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flushing CSV: %w", err)
	}
	return builder.String(), nil
}
