// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"errors"
	"testing"

	"swmeta/internal/metadata"
	"swmeta/internal/swapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPartHost(doc *fakeDocument) *fakeHost {
	return &fakeHost{doc: doc}
}

func extract(t *testing.T, host *fakeHost, path string) *metadata.Report {
	t.Helper()
	conn := &fakeConnector{host: host}
	report, err := New(conn, nil).Extract(path)
	require.NoError(t, err)
	require.NotNil(t, report)
	return report
}

func TestUnsupportedExtensionRejectedBeforeHostInteraction(t *testing.T) {
	conn := &fakeConnector{host: newPartHost(&fakeDocument{})}

	report, err := New(conn, nil).Extract("drawing.dwg")

	require.Error(t, err)
	assert.True(t, errors.Is(err, swapi.ErrUnsupportedType))
	assert.Nil(t, report)
	assert.Zero(t, conn.connects, "no host interaction may happen for unsupported files")
}

func TestConnectionFailureYieldsEmptyReport(t *testing.T) {
	conn := &fakeConnector{err: swapi.ErrConnectionFailed}

	report, err := New(conn, nil).Extract("part.sldprt")

	require.NoError(t, err, "connection failure is non-fatal to the run")
	assert.Zero(t, report.NonEmptyCount())
	require.Len(t, report.Diagnostics(), 1)
	assert.ErrorIs(t, report.Diagnostics()[0].Err, swapi.ErrConnectionFailed)
}

func TestEvaluatedValuePreferredOverRaw(t *testing.T) {
	doc := &fakeDocument{
		title:     "part.sldprt",
		propNames: []string{"Weight"},
		props: map[string]swapi.PropertyValue{
			"Weight": {Raw: "3", Evaluated: "3.000kg"},
		},
	}

	report := extract(t, newPartHost(doc), "part.sldprt")

	value, ok := report.Get("Custom_Weight")
	require.True(t, ok)
	assert.Equal(t, "3.000kg", value)
}

func TestRawValueUsedWhenEvaluatedMissing(t *testing.T) {
	doc := &fakeDocument{
		title:     "part.sldprt",
		propNames: []string{"PartNo"},
		props: map[string]swapi.PropertyValue{
			"PartNo": {Raw: "A-1042"},
		},
	}

	report := extract(t, newPartHost(doc), "part.sldprt")

	value, ok := report.Get("Custom_PartNo")
	require.True(t, ok)
	assert.Equal(t, "A-1042", value)
}

func TestKeyPropertiesAlwaysPresent(t *testing.T) {
	doc := &fakeDocument{title: "part.sldprt"} // no custom properties at all

	report := extract(t, newPartHost(doc), "part.sldprt")

	for _, name := range []string{"Weight", "Material", "Thickness", "Description"} {
		value, ok := report.Get("Custom_" + name)
		assert.True(t, ok, "Custom_%s must be present", name)
		assert.Empty(t, value)
	}
}

func TestKeyPropertiesPresentWhenEnumerationFails(t *testing.T) {
	doc := &fakeDocument{
		title:    "part.sldprt",
		propsErr: errors.New("property manager unavailable"),
	}

	report := extract(t, newPartHost(doc), "part.sldprt")

	for _, name := range metadata.KeyProperties {
		_, ok := report.Get(metadata.CustomKey(name))
		assert.True(t, ok, "Custom_%s must be present even when enumeration fails", name)
	}
	assert.NotEmpty(t, report.Diagnostics())
}

func TestPerPropertyFailureDoesNotAbortEnumeration(t *testing.T) {
	doc := &fakeDocument{
		title:     "part.sldprt",
		propNames: []string{"Weight", "Finish"},
		props: map[string]swapi.PropertyValue{
			"Finish": {Evaluated: "Anodized"},
		},
		getErrs: map[string]error{"Weight": errors.New("read failed")},
	}

	report := extract(t, newPartHost(doc), "part.sldprt")

	value, ok := report.Get("Custom_Finish")
	require.True(t, ok)
	assert.Equal(t, "Anodized", value)
	assert.NotEmpty(t, report.Diagnostics())
}

func TestSummaryFieldFailureIsolated(t *testing.T) {
	doc := &fakeDocument{
		title: "part.sldprt",
		summary: map[swapi.SummaryField]string{
			swapi.SummaryTitle:  "Bracket",
			swapi.SummaryAuthor: "jsmith",
		},
		summaryErrs: map[swapi.SummaryField]error{
			swapi.SummaryRevisionNumber: errors.New("slot read failed"),
		},
	}

	report := extract(t, newPartHost(doc), "part.sldprt")

	title, ok := report.Get("Summary_Title")
	require.True(t, ok)
	assert.Equal(t, "Bracket", title)

	author, ok := report.Get("Summary_Author")
	require.True(t, ok)
	assert.Equal(t, "jsmith", author)

	_, ok = report.Get("Summary_RevisionNumber")
	assert.False(t, ok)
}

func TestFileIdentityRecorded(t *testing.T) {
	doc := &fakeDocument{
		title: "bracket.sldprt",
		path:  `C:\work\bracket.sldprt`,
	}

	report := extract(t, newPartHost(doc), "part.sldprt")

	name, _ := report.Get(metadata.KeyFileName)
	assert.Equal(t, "bracket.sldprt", name)
	path, _ := report.Get(metadata.KeyFilePath)
	assert.Equal(t, `C:\work\bracket.sldprt`, path)
}

func TestConfigurationNameAndCount(t *testing.T) {
	doc := &fakeDocument{
		title:        "part.sldprt",
		activeConfig: "Default",
		configNames:  []string{"Default", "Machined", "Cast"},
	}

	report := extract(t, newPartHost(doc), "part.sldprt")

	active, _ := report.Get(metadata.KeyActiveConfiguration)
	assert.Equal(t, "Default", active)
	count, _ := report.Get(metadata.KeyConfigurationCount)
	assert.Equal(t, "3", count)
}

func TestMaterialDensityForPartsOnly(t *testing.T) {
	doc := &fakeDocument{
		title:     "doc",
		materials: []float64{7.85, 0.5},
	}

	report := extract(t, newPartHost(doc), "part.sldprt")
	density, ok := report.Get(metadata.KeyMaterialDensity)
	require.True(t, ok)
	assert.Equal(t, "7.85", density)

	// Same document opened as an assembly produces no density key
	doc2 := &fakeDocument{title: "doc", materials: []float64{7.85}}
	report2 := extract(t, newPartHost(doc2), "assembly.sldasm")
	_, ok = report2.Get(metadata.KeyMaterialDensity)
	assert.False(t, ok)
}

func TestMassPropertiesFixedPrecision(t *testing.T) {
	doc := &fakeDocument{
		title: "part.sldprt",
		mass:  &swapi.MassProperties{Mass: 1.2345, Volume: 0.5, SurfaceArea: 12},
	}

	report := extract(t, newPartHost(doc), "part.sldprt")

	mass, _ := report.Get(metadata.KeyMass)
	assert.Equal(t, "1.234500", mass)
	volume, _ := report.Get(metadata.KeyVolume)
	assert.Equal(t, "0.500000", volume)
	area, _ := report.Get(metadata.KeySurfaceArea)
	assert.Equal(t, "12.000000", area)
}

func TestOpenRetriesWithParameterizedCall(t *testing.T) {
	host := newPartHost(&fakeDocument{title: "part.sldprt"})
	host.openErr = errors.New("OpenDoc rejected")

	report := extract(t, host, "part.sldprt")

	assert.Equal(t, 1, host.openCalls)
	assert.Equal(t, 1, host.fallbackCalls)
	name, _ := report.Get(metadata.KeyFileName)
	assert.Equal(t, "part.sldprt", name)
}

func TestOpenFailureOnBothCallsAbortsExtraction(t *testing.T) {
	host := newPartHost(&fakeDocument{})
	host.openErr = errors.New("OpenDoc rejected")
	host.fallbackErr = errors.New("OpenDoc6 rejected")

	report := extract(t, host, "part.sldprt")

	assert.Zero(t, report.NonEmptyCount())
	assert.NotEmpty(t, report.Diagnostics())
	assert.Equal(t, 1, host.released, "host handle must still be released")
	assert.Empty(t, host.closedTitles, "no document was opened, none may be closed")
}

func TestCleanupClosesByTitleExactlyOnce(t *testing.T) {
	doc := &fakeDocument{title: "bracket.sldprt"}
	host := newPartHost(doc)

	extract(t, host, "part.sldprt")

	assert.Equal(t, []string{"bracket.sldprt"}, host.closedTitles)
	assert.Equal(t, 1, doc.released)
	assert.Equal(t, 1, host.released)
}

func TestCleanupRunsWhenFieldReadsFail(t *testing.T) {
	doc := &fakeDocument{
		title:       "part.sldprt",
		propsErr:    errors.New("boom"),
		massErr:     errors.New("boom"),
		materialErr: errors.New("boom"),
	}
	host := newPartHost(doc)

	extract(t, host, "part.sldprt")

	assert.Len(t, host.closedTitles, 1)
	assert.Equal(t, 1, host.released)
}

func TestHostForcedInvisible(t *testing.T) {
	host := newPartHost(&fakeDocument{title: "part.sldprt"})

	extract(t, host, "part.sldprt")

	require.NotEmpty(t, host.visibleSet)
	assert.False(t, host.visibleSet[0])
}
