// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package swapi defines the narrow, statically typed surface this tool
// requires from the SolidWorks automation interface. The COM binding lives
// behind these interfaces; all variant shape-sniffing stays there and never
// leaks into the extraction logic.
package swapi

import "errors"

// Sentinel errors for the failure taxonomy shared by the CLI and extractor.
var (
	// ErrConnectionFailed indicates neither attach nor spawn produced a
	// usable host instance.
	ErrConnectionFailed = errors.New("failed to connect to SolidWorks")

	// ErrUnsupportedType indicates the file extension is not in the
	// supported allow-list. Raised before any host interaction.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrOpenFailed indicates the host accepted the open call but returned
	// no document handle.
	ErrOpenFailed = errors.New("failed to open document")

	// ErrAutomationUnavailable indicates the platform has no COM automation
	// support (any non-Windows build).
	ErrAutomationUnavailable = errors.New("COM automation is not available on this platform")
)

// PropertyValue is one custom property read: the raw (as-typed) text and the
// formula-resolved text, either of which may be empty.
type PropertyValue struct {
	Raw       string
	Evaluated string
}

// Final returns the value to report: the evaluated value when present,
// otherwise the raw value.
func (v PropertyValue) Final() string {
	if v.Evaluated != "" {
		return v.Evaluated
	}
	return v.Raw
}

// MassProperties holds the host's computed mass properties for a document.
type MassProperties struct {
	Mass        float64
	Volume      float64
	SurfaceArea float64
}

// Connector acquires a host handle, attaching to a running instance when
// possible and spawning a new one otherwise.
type Connector interface {
	Connect() (Host, error)
}

// Host is one handle to the SolidWorks application process. The session that
// holds it may close documents it opened but must never terminate the
// process itself.
type Host interface {
	// Spawned reports whether this session started the process, as opposed
	// to attaching to one that was already running.
	Spawned() bool

	// SetVisible switches the host's interactive UI on or off.
	SetVisible(visible bool) error

	// OpenDocument opens path with the simple open call.
	OpenDocument(path string, docType DocumentType) (Document, error)

	// OpenDocumentWithOptions opens path with the more-parameterized open
	// call (silent options, default configuration, error outputs). Used as
	// the fallback when OpenDocument errors.
	OpenDocumentWithOptions(path string, docType DocumentType) (Document, error)

	// CloseDocument closes an open document by its title. The host
	// automation surface closes by title, not by handle.
	CloseDocument(title string) error

	// Release drops the host handle. It never terminates the process.
	Release()
}

// Document is one opened CAD file within the host.
type Document interface {
	Title() (string, error)
	PathName() (string, error)
	CustomProperties() (PropertySet, error)
	SummaryField(field SummaryField) (string, error)
	ActiveConfigurationName() (string, error)
	ConfigurationNames() ([]string, error)
	MaterialPropertyValues() ([]float64, error)
	MassProperties() (*MassProperties, error)
	Release()
}

// PropertySet is a document's custom property collection.
type PropertySet interface {
	// Names lists all defined property names.
	Names() ([]string, error)

	// Get reads one property, returning both the raw and evaluated values
	// when the host supports the richer read, or just the raw value.
	Get(name string) (PropertyValue, error)
}
