// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"swmeta/internal/metadata"
	"swmeta/internal/observability"
	"swmeta/internal/swapi"
)

// session owns the host and document handles for one extraction attempt.
// Exactly one document is open at a time.
type session struct {
	host     swapi.Host
	doc      swapi.Document
	report   *metadata.Report
	observer *observability.StandardObserver
}

// open tries the simple open call first and retries once with the
// parameterized call when it errors. Same document, same type code.
func (s *session) open(path string, docType swapi.DocumentType) error {
	doc, err := s.host.OpenDocument(path, docType)
	if err != nil {
		s.debug("primary open call failed, retrying with options: " + err.Error())
		doc, err = s.host.OpenDocumentWithOptions(path, docType)
	}
	if err != nil {
		return err
	}
	s.doc = doc
	s.debug("opened " + docType.String() + " document")
	return nil
}

// close releases the document and host handles. The host requires closing a
// document by its title, so the title is resolved first. Errors are recorded
// as diagnostics and swallowed; the host process is never terminated, even
// when this session spawned it.
func (s *session) close() {
	if s.doc != nil {
		title, err := s.doc.Title()
		if err != nil {
			s.report.AddDiagnostic("cleanup", "title", err)
		}
		if title != "" {
			if err := s.host.CloseDocument(title); err != nil {
				s.report.AddDiagnostic("cleanup", "close", err)
			}
		}
		s.doc.Release()
		s.doc = nil
	}
	s.host.Release()
}

func (s *session) debug(detail string) {
	if s.observer != nil && s.observer.DebugObserver != nil {
		s.observer.DebugObserver.LogDetail(component, detail)
	}
}
