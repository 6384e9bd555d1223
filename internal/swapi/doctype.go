// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package swapi

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// DocumentType identifies the kind of SolidWorks document. The numeric
// values are the host's swDocumentTypes_e type codes and are passed verbatim
// to the open calls.
type DocumentType int

const (
	DocumentTypeNone     DocumentType = 0
	DocumentTypePart     DocumentType = 1 // swDocPART
	DocumentTypeAssembly DocumentType = 2 // swDocASSEMBLY
	DocumentTypeDrawing  DocumentType = 3 // swDocDRAWING
)

func (t DocumentType) String() string {
	switch t {
	case DocumentTypePart:
		return "part"
	case DocumentTypeAssembly:
		return "assembly"
	case DocumentTypeDrawing:
		return "drawing"
	default:
		return "unknown"
	}
}

// extensionTypes maps the supported lowercased file extensions to their
// document type codes.
var extensionTypes = map[string]DocumentType{
	".sldprt": DocumentTypePart,
	".sldasm": DocumentTypeAssembly,
	".slddrw": DocumentTypeDrawing,
}

// ClassifyPath derives the document type from the file extension alone.
// Returns ErrUnsupportedType for anything outside the allow-list; this check
// always runs before any host interaction.
func ClassifyPath(path string) (DocumentType, error) {
	ext := strings.ToLower(filepath.Ext(path))
	docType, ok := extensionTypes[ext]
	if !ok {
		return DocumentTypeNone, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedType, ext, strings.Join(SupportedExtensions(), ", "))
	}
	return docType, nil
}

// SupportedExtensions returns the extension allow-list in sorted order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensionTypes))
	for ext := range extensionTypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
