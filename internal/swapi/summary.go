// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package swapi

// SummaryField is a numeric index into the host's fixed summary information
// slots (swSummInfoField_e).
type SummaryField int

const (
	SummaryTitle           SummaryField = 0
	SummarySubject         SummaryField = 1
	SummaryAuthor          SummaryField = 2
	SummaryKeywords        SummaryField = 3
	SummaryComments        SummaryField = 4
	SummaryLastSavedBy     SummaryField = 5
	SummaryRevisionNumber  SummaryField = 6
	SummaryCreatedDate     SummaryField = 9
	SummaryModifiedDate    SummaryField = 10
	SummaryLastPrintedDate SummaryField = 11
)

var summaryFieldNames = map[SummaryField]string{
	SummaryTitle:           "Title",
	SummarySubject:         "Subject",
	SummaryAuthor:          "Author",
	SummaryKeywords:        "Keywords",
	SummaryComments:        "Comments",
	SummaryLastSavedBy:     "LastSavedBy",
	SummaryRevisionNumber:  "RevisionNumber",
	SummaryCreatedDate:     "CreatedDate",
	SummaryModifiedDate:    "ModifiedDate",
	SummaryLastPrintedDate: "LastPrintedDate",
}

// Name returns the report field name for this slot (e.g. "LastSavedBy").
func (f SummaryField) Name() string {
	if name, ok := summaryFieldNames[f]; ok {
		return name
	}
	return "Unknown"
}

// SummaryFields returns all summary slots in index order. Each is read
// independently; a failure on one never affects the others.
func SummaryFields() []SummaryField {
	return []SummaryField{
		SummaryTitle,
		SummarySubject,
		SummaryAuthor,
		SummaryKeywords,
		SummaryComments,
		SummaryLastSavedBy,
		SummaryRevisionNumber,
		SummaryCreatedDate,
		SummaryModifiedDate,
		SummaryLastPrintedDate,
	}
}
