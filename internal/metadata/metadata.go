// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"fmt"
	"sort"
)

// Well-known report keys. Extraction steps write into disjoint namespaces so
// collisions between steps are structurally impossible.
const (
	KeyFileName            = "FileName"
	KeyFilePath            = "FilePath"
	KeyActiveConfiguration = "ActiveConfiguration"
	KeyConfigurationCount  = "ConfigurationCount"
	KeyMaterialDensity     = "MaterialDensity"
	KeyMass                = "Mass"
	KeyVolume              = "Volume"
	KeySurfaceArea         = "SurfaceArea"

	CustomKeyPrefix  = "Custom_"
	SummaryKeyPrefix = "Summary_"
)

// KeyProperties are the custom property names that must always appear in a
// report, as empty strings when the document does not define them, so
// downstream consumers can rely on key presence.
var KeyProperties = []string{"Weight", "Material", "Thickness", "Description"}

// CustomKey returns the namespaced report key for a custom property name.
func CustomKey(name string) string {
	return CustomKeyPrefix + name
}

// SummaryKey returns the namespaced report key for a summary field name.
func SummaryKey(name string) string {
	return SummaryKeyPrefix + name
}

// Diagnostic records one failed or degraded field read. Field reads never
// abort extraction; they surface here instead.
type Diagnostic struct {
	Field string // report key or field name the read was targeting
	Stage string // extraction stage, e.g. "custom-properties"
	Err   error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s/%s: %v", d.Stage, d.Field, d.Err)
}

// Report is the single output artifact of an extraction run: a string-keyed
// map assembled monotonically (a key, once set, is never overwritten or
// removed) plus the diagnostics accumulated along the way.
type Report struct {
	fields map[string]string
	diags  []Diagnostic
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{fields: make(map[string]string)}
}

// Set records a field value. The first write for a key wins; later writes
// for the same key are ignored, preserving the monotonic-assembly invariant.
func (r *Report) Set(key, value string) {
	if _, exists := r.fields[key]; exists {
		return
	}
	r.fields[key] = value
}

// Get returns the value for key and whether the key is present.
func (r *Report) Get(key string) (string, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Len returns the total number of keys, including empty-valued ones.
func (r *Report) Len() int {
	return len(r.fields)
}

// SortedKeys returns all keys in lexicographic order.
func (r *Report) SortedKeys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NonEmptyCount returns the number of fields carrying a non-empty value.
// This is the count the text report tallies.
func (r *Report) NonEmptyCount() int {
	n := 0
	for _, v := range r.fields {
		if v != "" {
			n++
		}
	}
	return n
}

// Fields returns a copy of the field map.
func (r *Report) Fields() map[string]string {
	out := make(map[string]string, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

// AddDiagnostic records a failed field read without aborting extraction.
func (r *Report) AddDiagnostic(stage, field string, err error) {
	r.diags = append(r.diags, Diagnostic{Field: field, Stage: stage, Err: err})
}

// Diagnostics returns the diagnostics in the order they were recorded.
func (r *Report) Diagnostics() []Diagnostic {
	return r.diags
}
