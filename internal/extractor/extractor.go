// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extractor reads descriptive metadata out of one SolidWorks
// document through the swapi adapter surface. Host-side trouble never
// surfaces as a Go error: the result is a partial (possibly empty) report
// whose diagnostics carry the detail.
package extractor

import (
	"fmt"
	"path/filepath"

	"swmeta/internal/metadata"
	"swmeta/internal/observability"
	"swmeta/internal/swapi"
)

const component = "metadata-extractor"

// Extractor runs one-shot metadata extractions against a host connector.
type Extractor struct {
	connector swapi.Connector
	observer  *observability.StandardObserver
}

// New creates an extractor. The observer may be nil.
func New(connector swapi.Connector, observer *observability.StandardObserver) *Extractor {
	return &Extractor{connector: connector, observer: observer}
}

// Extract opens path in the host and assembles its metadata report.
//
// Only pre-host validation (unresolvable or unsupported path) returns an
// error; once host interaction begins, every failure is recorded as a
// diagnostic on the report instead. Cleanup runs exactly once per attempt
// and never terminates the host process.
func (e *Extractor) Extract(path string) (*metadata.Report, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", path, err)
	}

	// Extension check comes first: unsupported files are rejected with no
	// host interaction at all.
	docType, err := swapi.ClassifyPath(abs)
	if err != nil {
		return nil, err
	}

	report := metadata.NewReport()
	done := e.timing("extract", abs)

	host, err := e.connector.Connect()
	if err != nil {
		report.AddDiagnostic("connect", "host", err)
		done(false, nil)
		return report, nil
	}

	s := &session{host: host, report: report, observer: e.observer}
	defer s.close()

	if err := host.SetVisible(false); err != nil {
		report.AddDiagnostic("connect", "visibility", err)
	}

	if err := s.open(abs, docType); err != nil {
		report.AddDiagnostic("open", abs, err)
		done(false, nil)
		return report, nil
	}

	s.readCustomProperties()
	s.readSummaryInfo()
	s.readFileIdentity()
	s.readConfiguration()
	if docType == swapi.DocumentTypePart {
		s.readMaterial()
	}
	s.readMassProperties()

	done(true, map[string]interface{}{
		"fields":      report.Len(),
		"non_empty":   report.NonEmptyCount(),
		"diagnostics": len(report.Diagnostics()),
	})
	return report, nil
}

func (e *Extractor) timing(operation, filePath string) func(bool, map[string]interface{}) {
	if e.observer == nil {
		return func(bool, map[string]interface{}) {}
	}
	return e.observer.StartTiming(component, operation, filePath)
}
