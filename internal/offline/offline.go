// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package offline reads summary metadata straight out of a SolidWorks file
// on disk, without a running host. SolidWorks documents are OLE compound
// files carrying a standard \x05SummaryInformation property set, which is
// all that is recoverable this way; custom properties, configurations and
// mass properties require the host.
package offline

import (
	"fmt"
	"os"
	"path/filepath"

	"swmeta/internal/metadata"
	"swmeta/internal/swapi"

	"github.com/richardlehane/mscfb"
	"github.com/richardlehane/msoleps"
)

const stage = "offline-summary"

// summaryKeys maps OLE summary property names to the report field names the
// host-backed extraction would produce, so both paths emit the same keys.
var summaryKeys = map[string]string{
	"Title":               "Title",
	"Subject":             "Subject",
	"Author":              "Author",
	"Keywords":            "Keywords",
	"Comments":            "Comments",
	"Last author":         "LastSavedBy",
	"Revision number":     "RevisionNumber",
	"Create date/time":    "CreatedDate",
	"Last save date/time": "ModifiedDate",
	"Last printed":        "LastPrintedDate",
}

// ReadSummary extracts the summary information property set from path.
// The extension allow-list applies exactly as in host-backed extraction;
// unsupported files are rejected before the file is opened.
func ReadSummary(path string) (*metadata.Report, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", path, err)
	}
	if _, err := swapi.ClassifyPath(abs); err != nil {
		return nil, err
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", abs, err)
	}
	defer f.Close()

	doc, err := mscfb.New(f)
	if err != nil {
		return nil, fmt.Errorf("reading compound file %s: %w", abs, err)
	}

	report := metadata.NewReport()
	report.Set(metadata.KeyFileName, filepath.Base(abs))
	report.Set(metadata.KeyFilePath, abs)

	// Key custom properties stay part of the report contract even though
	// offline mode cannot resolve them.
	for _, name := range metadata.KeyProperties {
		report.Set(metadata.CustomKey(name), "")
	}

	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if !msoleps.IsMSOLEPS(entry.Initial) {
			continue
		}
		props := msoleps.New()
		if err := props.Reset(doc); err != nil {
			report.AddDiagnostic(stage, entry.Name, err)
			continue
		}
		for _, prop := range props.Property {
			name, ok := summaryKeys[prop.Name]
			if !ok {
				continue
			}
			value := prop.String()
			if value == "" {
				continue
			}
			report.Set(metadata.SummaryKey(name), value)
		}
	}

	return report, nil
}
