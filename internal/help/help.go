// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"swmeta/internal/swapi"

	"github.com/fatih/color"
)

// System renders usage and help text for the CLI
type System struct {
	colors map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		colors: map[string]*color.Color{
			"title":   color.New(color.FgWhite, color.Bold),
			"header":  color.New(color.FgBlue, color.Bold),
			"item":    color.New(color.FgCyan),
			"example": color.New(color.FgMagenta),
		},
	}
}

// ShowUsage displays the short usage line and supported file types
func (h *System) ShowUsage() {
	fmt.Fprintf(os.Stderr, "Usage: swmeta [options] <path-to-solidworks-file>\n")
	fmt.Fprintf(os.Stderr, "Supported files: %s\n", strings.Join(swapi.SupportedExtensions(), ", "))
	fmt.Fprintf(os.Stderr, "Run 'swmeta -help' for details.\n")
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("swmeta - SolidWorks Metadata Extraction Tool")
	fmt.Println()
	fmt.Println("Extracts custom properties, summary information, file identity,")
	fmt.Println("configuration, material and mass properties from SolidWorks documents")
	fmt.Println("through the application's COM automation interface.")
	fmt.Println()

	h.colors["header"].Println("USAGE")
	fmt.Println("  swmeta [options] <path-to-solidworks-file>")
	fmt.Println()

	h.colors["header"].Println("SUPPORTED FILE TYPES")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\tpart document\n", h.colors["item"].Sprint(".sldprt"))
	fmt.Fprintf(w, "  %s\tassembly document\n", h.colors["item"].Sprint(".sldasm"))
	fmt.Fprintf(w, "  %s\tdrawing document\n", h.colors["item"].Sprint(".slddrw"))
	w.Flush()
	fmt.Println()

	h.colors["header"].Println("OPTIONS")
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\toutput format: text, json, csv (default: text)\n", h.colors["item"].Sprint("-format"))
	fmt.Fprintf(w, "  %s\twrite the report to a file instead of stdout\n", h.colors["item"].Sprint("-output"))
	fmt.Fprintf(w, "  %s\tread summary metadata from the file directly, without SolidWorks\n", h.colors["item"].Sprint("-offline"))
	fmt.Fprintf(w, "  %s\tconfiguration file path\n", h.colors["item"].Sprint("-config"))
	fmt.Fprintf(w, "  %s\tnamed profile from the configuration file\n", h.colors["item"].Sprint("-profile"))
	fmt.Fprintf(w, "  %s\tinclude per-field diagnostics in the report\n", h.colors["item"].Sprint("-verbose"))
	fmt.Fprintf(w, "  %s\tstep-by-step automation tracing on stderr\n", h.colors["item"].Sprint("-debug"))
	fmt.Fprintf(w, "  %s\tdisable colored output\n", h.colors["item"].Sprint("-no-color"))
	fmt.Fprintf(w, "  %s\tprint version information\n", h.colors["item"].Sprint("-version"))
	w.Flush()
	fmt.Println()

	h.colors["header"].Println("EXAMPLES")
	h.colors["example"].Println("  swmeta bracket.sldprt")
	h.colors["example"].Println("  swmeta -format json -output bracket.json bracket.sldprt")
	h.colors["example"].Println("  swmeta -offline -format csv housing.sldasm")
	fmt.Println()

	h.colors["header"].Println("NOTES")
	fmt.Println("  A running SolidWorks instance is reused when one exists; otherwise a")
	fmt.Println("  new invisible instance is started. The tool closes the document it")
	fmt.Println("  opened but never exits SolidWorks itself.")
}
