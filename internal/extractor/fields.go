// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"fmt"
	"strconv"

	"swmeta/internal/metadata"
)

const (
	stageIdentity      = "file-identity"
	stageConfiguration = "configuration"
	stageMaterial      = "material"
	stageMass          = "mass-properties"
)

// readFileIdentity records the document's display name and resolved path.
func (s *session) readFileIdentity() {
	if title, err := s.doc.Title(); err != nil {
		s.report.AddDiagnostic(stageIdentity, metadata.KeyFileName, err)
	} else if title != "" {
		s.report.Set(metadata.KeyFileName, title)
	}

	if path, err := s.doc.PathName(); err != nil {
		s.report.AddDiagnostic(stageIdentity, metadata.KeyFilePath, err)
	} else if path != "" {
		s.report.Set(metadata.KeyFilePath, path)
	}
}

// readConfiguration records the active configuration name and the total
// configuration count.
func (s *session) readConfiguration() {
	if name, err := s.doc.ActiveConfigurationName(); err != nil {
		s.report.AddDiagnostic(stageConfiguration, metadata.KeyActiveConfiguration, err)
	} else if name != "" {
		s.report.Set(metadata.KeyActiveConfiguration, name)
	}

	if names, err := s.doc.ConfigurationNames(); err != nil {
		s.report.AddDiagnostic(stageConfiguration, metadata.KeyConfigurationCount, err)
	} else if len(names) > 0 {
		s.report.Set(metadata.KeyConfigurationCount, strconv.Itoa(len(names)))
	}
}

// readMaterial records the material density. Only called for part
// documents; assemblies and drawings carry no material property values.
func (s *session) readMaterial() {
	values, err := s.doc.MaterialPropertyValues()
	if err != nil {
		s.report.AddDiagnostic(stageMaterial, metadata.KeyMaterialDensity, err)
		return
	}
	if len(values) == 0 {
		return
	}
	// The first entry of the material property value sequence is density.
	s.report.Set(metadata.KeyMaterialDensity, strconv.FormatFloat(values[0], 'f', -1, 64))
}

// readMassProperties records the computed mass, volume and surface area with
// fixed six-digit precision.
func (s *session) readMassProperties() {
	props, err := s.doc.MassProperties()
	if err != nil {
		s.report.AddDiagnostic(stageMass, metadata.KeyMass, err)
		return
	}
	if props == nil {
		return
	}
	s.report.Set(metadata.KeyMass, fmt.Sprintf("%.6f", props.Mass))
	s.report.Set(metadata.KeyVolume, fmt.Sprintf("%.6f", props.Volume))
	s.report.Set(metadata.KeySurfaceArea, fmt.Sprintf("%.6f", props.SurfaceArea))
}
