package cmd

import (
	"context"
	"encoding/json"

	"github.com/joshyorko/rpms2sbom/common"
	"github.com/joshyorko/rpms2sbom/operations"
	"github.com/joshyorko/rpms2sbom/pretty"
	"github.com/joshyorko/rpms2sbom/sbom"
	"github.com/joshyorko/rpms2sbom/settings"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <rpm-file>",
	Short: "Show the metadata and checksum extracted from one RPM package.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report, err := operations.Inspect(context.Background(), newReader(settings.Global), args[0])
		pretty.Guard(err == nil, exitExtraction, "Error: %v", err)

		if jsonFlag {
			nice, err := json.MarshalIndent(report, "", "  ")
			pretty.Guard(err == nil, exitSerialization, "%v", err)
			common.Stdout("%s\n", nice)
			return
		}
		meta := report.Metadata
		rows := []pretty.SummaryRow{
			{Label: "name", Value: meta.Name},
			{Label: "version", Value: meta.Version},
			{Label: "summary", Value: meta.Summary},
			{Label: "homepage", Value: meta.URL},
			{Label: "build host", Value: meta.BuildHost},
			{Label: "built", Value: meta.Built().Format(sbom.TimeFormat)},
			{Label: "sha1", Value: report.Sha1},
		}
		common.Stdout("%s", pretty.Summary(report.Path, rows, nil))
		common.Stdout("%s\n", meta.Description)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVarP(&jsonFlag, "json", "j", false, "print the report as JSON")
}
