// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"errors"
	"strings"
	"testing"

	"swmeta/internal/formatters"
	"swmeta/internal/metadata"
)

func noColor() formatters.FormatterOptions {
	return formatters.FormatterOptions{NoColor: true}
}

func TestFormatSortsKeysAndExcludesEmptyValues(t *testing.T) {
	report := metadata.NewReport()
	report.Set("Summary_Title", "Bracket")
	report.Set("Custom_Weight", "3.000kg")
	report.Set("Custom_Material", "") // excluded from the listing
	report.Set("ActiveConfiguration", "Default")

	out, err := NewFormatter().Format(report, noColor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(out, "Custom_Material") {
		t.Error("empty-valued fields must not appear in the text report")
	}

	idxConfig := strings.Index(out, "ActiveConfiguration")
	idxWeight := strings.Index(out, "Custom_Weight")
	idxTitle := strings.Index(out, "Summary_Title")
	if idxConfig == -1 || idxWeight == -1 || idxTitle == -1 {
		t.Fatalf("missing expected keys in output:\n%s", out)
	}
	if !(idxConfig < idxWeight && idxWeight < idxTitle) {
		t.Errorf("keys not in lexicographic order:\n%s", out)
	}
}

func TestFormatCountsNonEmptyFieldsOnly(t *testing.T) {
	report := metadata.NewReport()
	report.Set("Custom_Weight", "3.000kg")
	report.Set("Custom_Material", "")
	report.Set("FileName", "part.sldprt")

	out, err := NewFormatter().Format(report, noColor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Total metadata fields found: 2") {
		t.Errorf("expected tally of 2 non-empty fields:\n%s", out)
	}
}

func TestFormatPadsKeys(t *testing.T) {
	report := metadata.NewReport()
	report.Set("Mass", "1.234500")

	out, err := NewFormatter().Format(report, noColor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Mass                     : 1.234500") {
		t.Errorf("expected key padded to 25 columns:\n%s", out)
	}
}

func TestFormatEmptyReport(t *testing.T) {
	out, err := NewFormatter().Format(metadata.NewReport(), noColor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No metadata could be extracted.") {
		t.Errorf("unexpected empty-report output: %q", out)
	}
}

func TestFormatVerboseIncludesDiagnostics(t *testing.T) {
	report := metadata.NewReport()
	report.Set("FileName", "part.sldprt")
	report.AddDiagnostic("summary-info", "RevisionNumber", errors.New("slot read failed"))

	out, err := NewFormatter().Format(report, formatters.FormatterOptions{NoColor: true, Verbose: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Diagnostics:") {
		t.Errorf("expected diagnostics section in verbose output:\n%s", out)
	}
	if !strings.Contains(out, "summary-info/RevisionNumber: slot read failed") {
		t.Errorf("expected diagnostic detail in verbose output:\n%s", out)
	}
}

func TestFormatNonVerboseOmitsDiagnostics(t *testing.T) {
	report := metadata.NewReport()
	report.Set("FileName", "part.sldprt")
	report.AddDiagnostic("summary-info", "RevisionNumber", errors.New("slot read failed"))

	out, err := NewFormatter().Format(report, noColor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "Diagnostics:") {
		t.Errorf("diagnostics must be verbose-only:\n%s", out)
	}
}
