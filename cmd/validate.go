package cmd

import (
	"encoding/json"

	"github.com/joshyorko/rpms2sbom/common"
	"github.com/joshyorko/rpms2sbom/operations"
	"github.com/joshyorko/rpms2sbom/pretty"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <sbom-file>",
	Short: "Validate an existing SPDX document (.json, .spdx, .yaml or .yml).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Validate command lasted").Report()
		}
		messages, err := operations.ValidateFile(args[0])
		pretty.Guard(err == nil, exitSetup, "Error: %v", err)

		if jsonFlag {
			report := make([]map[string]string, 0, len(messages))
			for _, message := range messages {
				report = append(report, map[string]string{
					"message":   message.Message,
					"spdx_id":   message.Context.SPDXID,
					"parent_id": message.Context.ParentID,
					"element":   message.Context.Element,
				})
			}
			nice, err := json.MarshalIndent(report, "", "  ")
			pretty.Guard(err == nil, exitSerialization, "%v", err)
			common.Stdout("%s\n", nice)
		} else {
			operations.ReportViolations(messages)
		}
		pretty.Guard(len(messages) == 0, exitValidation, "Error: document invalid, %d violations", len(messages))
		pretty.Highlight("%s is a valid SPDX 2.3 document.", args[0])
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVarP(&jsonFlag, "json", "j", false, "print violations as JSON")
}
