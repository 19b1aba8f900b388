package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joshyorko/rpms2sbom/common"
	"github.com/joshyorko/rpms2sbom/operations"
	"github.com/joshyorko/rpms2sbom/pretty"
	"github.com/joshyorko/rpms2sbom/progresscore"
	"github.com/joshyorko/rpms2sbom/sbom"
	"github.com/joshyorko/rpms2sbom/settings"
	"github.com/joshyorko/rpms2sbom/xviper"
	"github.com/spf13/cobra"
)

const (
	exitSetup = 1 + iota
	exitExtraction
	exitValidation
	exitSerialization
)

var (
	configFile    string
	jsonFlag      bool
	silentFlag    bool
	debugFlag     bool
	traceFlag     bool
	colorlessFlag bool

	// flag name to settings key
	settingFlags = map[string]string{
		"out":       "output",
		"reader":    "reader",
		"on-error":  "on_error",
		"workers":   "workers",
		"namespace": "namespace",
		"name":      "document_name",
		"supplier":  "supplier",
		"unique":    "unique_namespace",
	}
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s <directory>", common.Product),
	Short: "Generate an SPDX 2.3 SBOM from a directory of RPM packages.",
	Long: `Walk a directory tree, read the metadata of every RPM package found
and write an SPDX 2.3 Software Bill of Materials describing them.

The output format follows the extension of --out: .spdx (tag-value), .json,
.xml, .yaml or .yml.

Examples:
  rpms2sbom /srv/repo --out sbom.json
  rpms2sbom /srv/repo --out sbom.spdx --reader native --workers 8`,
	Args: cobra.ExactArgs(1),
	Run:  generate,
}

// Execute runs the command line; errors end the process through
// common.ExitCode panics.
func Execute() {
	defer func() {
		if len(os.Args) > 1 {
			common.Trace("Command line was: %q", os.Args[1:])
		}
	}()

	rootCmd.SetArgs(os.Args[1:])
	err := rootCmd.Execute()
	pretty.Guard(err == nil, exitSetup, "Error: [rpms2sbom] %v", err)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "settings file (default $RPMS2SBOM_HOME/settings.yaml or $HOME/.rpms2sbom/settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "be less verbose on output")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "to get debug output where available (not for production use)")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "to get trace output where available (not for production use)")
	rootCmd.PersistentFlags().BoolVarP(&common.LogLinenumbers, "numbers", "", false, "put line numbers on produced log output")
	rootCmd.PersistentFlags().BoolVarP(&colorlessFlag, "colorless", "", false, "do not use colors in CLI UI")

	rootCmd.Flags().StringP("out", "o", "sbom.json", "output file; extension selects .spdx, .json, .xml, .yaml or .yml")
	rootCmd.Flags().String("reader", "rpm", "metadata reader: rpm (external rpm utility) or native")
	rootCmd.Flags().String("on-error", "abort", "what to do with unreadable packages: abort or skip")
	rootCmd.Flags().Int("workers", 1, "number of packages extracted in parallel")
	rootCmd.Flags().String("namespace", "https://rpm.sbom.example.com", "document namespace URI")
	rootCmd.Flags().String("name", "RPM SBOM Manifest", "document name")
	rootCmd.Flags().String("supplier", "", "package supplier (default is the current login name)")
	rootCmd.Flags().Bool("unique", false, "append document name and a random UUID to the namespace")
	rootCmd.Flags().BoolVarP(&jsonFlag, "json", "j", false, "print the run result as JSON")
}

func initConfig() {
	common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
	pretty.Disabled = colorlessFlag
	pretty.Setup()
	progresscore.Iconic = pretty.Iconic

	for flag, key := range settingFlags {
		err := xviper.BindFlag(key, rootCmd.Flags().Lookup(flag))
		pretty.Guard(err == nil, exitSetup, "Error: binding --%s failed: %v", flag, err)
	}
	_, err := settings.SummonSettings(configFile)
	pretty.Guard(err == nil, exitSetup, "Error: %v", err)
	common.Trace("settings from %q", xviper.ConfigFileUsed())
}

// exitCodeOf tells which stage an error came from.
func exitCodeOf(err error) int {
	var extraction *operations.ExtractionError
	var invalid *sbom.InvalidDocumentError
	var write *operations.WriteError
	switch {
	case errors.As(err, &extraction):
		return exitExtraction
	case errors.As(err, &invalid):
		return exitValidation
	case errors.As(err, &write), errors.Is(err, sbom.ErrUnsupportedFormat):
		return exitSerialization
	default:
		return exitSetup
	}
}
