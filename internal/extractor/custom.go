// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"fmt"

	"swmeta/internal/metadata"
)

const stageCustom = "custom-properties"

// readCustomProperties enumerates the document's custom properties. Each
// property read is isolated: a failure is recorded and skipped without
// aborting the rest of the enumeration. The key properties (Weight,
// Material, Thickness, Description) always end up in the report, as empty
// strings when the document does not define them.
func (s *session) readCustomProperties() {
	found := make(map[string]bool)
	defer func() {
		for _, name := range metadata.KeyProperties {
			if !found[name] {
				s.report.Set(metadata.CustomKey(name), "")
			}
		}
	}()

	props, err := s.doc.CustomProperties()
	if err != nil {
		s.report.AddDiagnostic(stageCustom, "property-manager", err)
		return
	}

	names, err := props.Names()
	if err != nil {
		s.report.AddDiagnostic(stageCustom, "names", err)
		return
	}
	s.debug(fmt.Sprintf("found %d custom properties", len(names)))

	for _, name := range names {
		value, err := props.Get(name)
		if err != nil {
			s.report.AddDiagnostic(stageCustom, name, err)
			continue
		}

		// An empty value counts as absent, not as an empty-string success.
		final := value.Final()
		if final == "" {
			continue
		}
		s.report.Set(metadata.CustomKey(name), final)
		found[name] = true
	}
}
