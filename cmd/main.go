// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"swmeta/internal/config"
	"swmeta/internal/extractor"
	"swmeta/internal/help"
	"swmeta/internal/metadata"
	"swmeta/internal/observability"
	"swmeta/internal/offline"
	"swmeta/internal/swapi"
	"swmeta/internal/version"

	"swmeta/internal/formatters"
	_ "swmeta/internal/formatters/csv"
	_ "swmeta/internal/formatters/json"
	_ "swmeta/internal/formatters/text"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// configFlags holds command line flag values
type configFlags struct {
	configFile   string
	profileName  string
	outputFormat string
	outputFile   string
	offlineMode  bool
	verbose      bool
	debug        bool
	noColor      bool
	showVersion  bool
	showHelp     bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format      string
	output      string
	offline     bool
	verbose     bool
	debug       bool
	noColor     bool
	settleDelay time.Duration
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		return 0
	}

	cfg := config.LoadConfigOrDefault(flags.configFile)
	activeProfile, err := cfg.GetProfile(flags.profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	finalConfig := resolveConfiguration(cfg, activeProfile, flags)

	// Disable colors when stdout is not a terminal or the report goes to a file
	if !term.IsTerminal(int(os.Stdout.Fd())) || finalConfig.output != "" {
		finalConfig.noColor = true
	}
	if finalConfig.noColor {
		color.NoColor = true
	}

	helpSystem := help.NewSystem(finalConfig.noColor)
	if flags.showHelp {
		helpSystem.ShowGeneralHelp()
		return 0
	}

	// Exactly one positional argument: the document path
	args := flag.Args()
	if len(args) != 1 {
		helpSystem.ShowUsage()
		return 2
	}
	filePath := args[0]

	// Validate the target before any host interaction
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", filePath)
		} else {
			fmt.Fprintf(os.Stderr, "Error: cannot access %s: %v\n", filePath, err)
		}
		return 1
	}
	if _, err := swapi.ClassifyPath(filePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	observer := observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr)
	if finalConfig.debug {
		debugObs := observability.NewDebugObserver(os.Stderr)
		observer = debugObs.StandardObserver
		observer.DebugObserver = debugObs
	}

	var report *metadata.Report
	if finalConfig.offline {
		report, err = offline.ReadSummary(filePath)
	} else {
		connector := &swapi.ComConnector{SettleDelay: finalConfig.settleDelay}
		report, err = extractor.New(connector, observer).Extract(filePath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Field-read failures are warnings, not errors
	for _, diag := range report.Diagnostics() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", diag)
	}

	output, err := formatters.Export(finalConfig.format, report, formatters.FormatterOptions{
		Verbose: finalConfig.verbose,
		NoColor: finalConfig.noColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if finalConfig.output != "" {
		if err := os.WriteFile(finalConfig.output, []byte(output+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: writing report to %s: %v\n", finalConfig.output, err)
			return 1
		}
		fmt.Printf("Report written to %s\n", finalConfig.output)
		return 0
	}

	fmt.Println(output)
	return 0
}

// parseFlags defines and parses the command line flags
func parseFlags() *configFlags {
	flags := &configFlags{}

	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file")
	flag.StringVar(&flags.profileName, "profile", "", "Named profile from the configuration file")
	flag.StringVar(&flags.outputFormat, "format", "", "Output format: text, json, csv")
	flag.StringVar(&flags.outputFile, "output", "", "Write the report to a file instead of stdout")
	flag.BoolVar(&flags.offlineMode, "offline", false, "Read summary metadata from the file directly, without SolidWorks")
	flag.BoolVar(&flags.verbose, "verbose", false, "Include per-field diagnostics in the report")
	flag.BoolVar(&flags.debug, "debug", false, "Step-by-step automation tracing on stderr")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.showVersion, "version", false, "Print version information")
	flag.BoolVar(&flags.showHelp, "help", false, "Show detailed help")

	flag.Parse()
	return flags
}

// resolveConfiguration resolves final configuration values from config file,
// profile, and command line flags, in increasing order of precedence
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Output file
	final.output = ""
	if cfg != nil && cfg.Defaults.Output != "" {
		final.output = cfg.Defaults.Output
	}
	if activeProfile != nil && activeProfile.Output != "" {
		final.output = activeProfile.Output
	}
	if isFlagSet("output") {
		final.output = flags.outputFile
	}

	// Offline mode
	final.offline = false
	if cfg != nil {
		final.offline = cfg.Defaults.Offline
	}
	if activeProfile != nil {
		final.offline = activeProfile.Offline
	}
	if isFlagSet("offline") {
		final.offline = flags.offlineMode
	}

	// Verbose
	final.verbose = false
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	final.debug = false
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	final.noColor = false
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Settle delay for a freshly spawned host
	final.settleDelay = swapi.DefaultSettleDelay
	if cfg != nil && cfg.Defaults.SettleDelaySeconds > 0 {
		final.settleDelay = time.Duration(cfg.Defaults.SettleDelaySeconds) * time.Second
	}
	if activeProfile != nil && activeProfile.SettleDelaySeconds > 0 {
		final.settleDelay = time.Duration(activeProfile.SettleDelaySeconds) * time.Second
	}

	return final
}

// isFlagSet checks whether a flag was explicitly provided on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
