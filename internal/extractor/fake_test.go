// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"fmt"

	"swmeta/internal/swapi"
)

// fakeConnector hands out a scripted host and counts how often it is asked
// to connect.
type fakeConnector struct {
	host     *fakeHost
	err      error
	connects int
}

func (c *fakeConnector) Connect() (swapi.Host, error) {
	c.connects++
	if c.err != nil {
		return nil, c.err
	}
	return c.host, nil
}

type fakeHost struct {
	doc         *fakeDocument
	openErr     error // primary open call
	fallbackErr error // parameterized open call

	openCalls     int
	fallbackCalls int
	visibleSet    []bool
	closedTitles  []string
	released      int
	spawned       bool
}

func (h *fakeHost) Spawned() bool { return h.spawned }

func (h *fakeHost) SetVisible(visible bool) error {
	h.visibleSet = append(h.visibleSet, visible)
	return nil
}

func (h *fakeHost) OpenDocument(path string, docType swapi.DocumentType) (swapi.Document, error) {
	h.openCalls++
	if h.openErr != nil {
		return nil, h.openErr
	}
	if h.doc == nil {
		return nil, swapi.ErrOpenFailed
	}
	return h.doc, nil
}

func (h *fakeHost) OpenDocumentWithOptions(path string, docType swapi.DocumentType) (swapi.Document, error) {
	h.fallbackCalls++
	if h.fallbackErr != nil {
		return nil, h.fallbackErr
	}
	if h.doc == nil {
		return nil, swapi.ErrOpenFailed
	}
	return h.doc, nil
}

func (h *fakeHost) CloseDocument(title string) error {
	h.closedTitles = append(h.closedTitles, title)
	return nil
}

func (h *fakeHost) Release() { h.released++ }

type fakeDocument struct {
	title    string
	titleErr error
	path     string
	pathErr  error

	propNames []string
	props     map[string]swapi.PropertyValue
	propsErr  error // CustomProperties() failure
	getErrs   map[string]error

	summary     map[swapi.SummaryField]string
	summaryErrs map[swapi.SummaryField]error

	activeConfig    string
	activeConfigErr error
	configNames     []string
	configNamesErr  error

	materials   []float64
	materialErr error

	mass    *swapi.MassProperties
	massErr error

	released int
}

func (d *fakeDocument) Title() (string, error)    { return d.title, d.titleErr }
func (d *fakeDocument) PathName() (string, error) { return d.path, d.pathErr }

func (d *fakeDocument) CustomProperties() (swapi.PropertySet, error) {
	if d.propsErr != nil {
		return nil, d.propsErr
	}
	return &fakePropertySet{doc: d}, nil
}

func (d *fakeDocument) SummaryField(field swapi.SummaryField) (string, error) {
	if err := d.summaryErrs[field]; err != nil {
		return "", err
	}
	return d.summary[field], nil
}

func (d *fakeDocument) ActiveConfigurationName() (string, error) {
	return d.activeConfig, d.activeConfigErr
}

func (d *fakeDocument) ConfigurationNames() ([]string, error) {
	return d.configNames, d.configNamesErr
}

func (d *fakeDocument) MaterialPropertyValues() ([]float64, error) {
	return d.materials, d.materialErr
}

func (d *fakeDocument) MassProperties() (*swapi.MassProperties, error) {
	return d.mass, d.massErr
}

func (d *fakeDocument) Release() { d.released++ }

type fakePropertySet struct {
	doc *fakeDocument
}

func (p *fakePropertySet) Names() ([]string, error) {
	return p.doc.propNames, nil
}

func (p *fakePropertySet) Get(name string) (swapi.PropertyValue, error) {
	if err := p.doc.getErrs[name]; err != nil {
		return swapi.PropertyValue{}, err
	}
	value, ok := p.doc.props[name]
	if !ok {
		return swapi.PropertyValue{}, fmt.Errorf("property %q not defined", name)
	}
	return value, nil
}
