// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"swmeta/internal/metadata"
	"swmeta/internal/swapi"
)

const stageSummary = "summary-info"

// readSummaryInfo reads the ten fixed summary slots by numeric index. Each
// slot is independent: a failed or empty read is skipped and the remaining
// slots are still attempted.
func (s *session) readSummaryInfo() {
	for _, field := range swapi.SummaryFields() {
		value, err := s.doc.SummaryField(field)
		if err != nil {
			s.report.AddDiagnostic(stageSummary, field.Name(), err)
			continue
		}
		if value == "" {
			continue
		}
		s.report.Set(metadata.SummaryKey(field.Name()), value)
	}
}
