package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshyorko/rpms2sbom/common"
	"github.com/joshyorko/rpms2sbom/journal"
	"github.com/joshyorko/rpms2sbom/operations"
	"github.com/joshyorko/rpms2sbom/pretty"
	"github.com/joshyorko/rpms2sbom/progresscore"
	"github.com/joshyorko/rpms2sbom/rpm"
	"github.com/joshyorko/rpms2sbom/sbom"
	"github.com/joshyorko/rpms2sbom/settings"
	"github.com/spf13/cobra"
)

func stageRows(steps []progresscore.TrackedStep) []pretty.StageRow {
	rows := make([]pretty.StageRow, 0, len(steps))
	for _, step := range steps {
		rows = append(rows, pretty.StageRow{
			Name:    step.Name,
			Status:  step.Status.Name(),
			Elapsed: fmt.Sprintf("%ss", common.Duration(step.Duration())),
		})
	}
	return rows
}

func newReader(config *settings.Settings) rpm.Reader {
	reader, err := rpm.NewReader(config.Reader, config.RpmCommand, config.RpmTimeout)
	pretty.Guard(err == nil, exitSetup, "Error: %v", err)
	return reader
}

func generate(cmd *cobra.Command, args []string) {
	if common.DebugFlag() {
		defer common.Stopwatch("Generate command lasted").Report()
	}

	root := args[0]
	info, err := os.Stat(root)
	pretty.Guard(err == nil, exitSetup, "Error: cannot use %q as package directory: %v", root, err)
	pretty.Guard(info.IsDir(), exitSetup, "Error: %q is not a directory.", root)

	config := settings.Global
	inventory := &operations.Inventory{
		Root:   root,
		Output: config.Output,
		Suffix: config.Suffix,
		Reader: newReader(config),
		Config: sbom.RunConfig{
			Namespace:    config.DocumentNamespace(),
			DocumentName: config.DocumentName,
			CreatorTool:  config.CreatorTool,
			Supplier:     config.SupplierName(),
		},
		SkipOnError: config.SkipOnError(),
		Workers:     config.Workers,
		Tracker:     progresscore.NewProgressTracker(operations.StageNames),
	}
	inventory.Tracker.SetOnUpdate(func(step progresscore.TrackedStep) {
		common.Debug("%s %s %s %s", step.Status, step.Name, step.Status.Name(), step.Message)
	})

	result, err := inventory.Run(context.Background())
	if err != nil {
		if inventory.Tracker.HasFailed() {
			common.Log("%s", pretty.Summary("Inventory failed", nil, stageRows(inventory.Tracker.Steps())))
		}
		pretty.Exit(exitCodeOf(err), "Error: %v", err)
	}

	common.Uncritical("journal", journal.Post(journal.Event{
		Event:       "generate",
		Root:        result.Root,
		Output:      result.Output,
		Packages:    result.Packages,
		Fingerprint: result.Fingerprint,
	}))

	if jsonFlag {
		report := make(map[string]interface{})
		report["root"] = result.Root
		report["output"] = result.Output
		report["packages"] = result.Packages
		report["skipped"] = result.Skipped
		report["fingerprint"] = result.Fingerprint
		report["elapsed"] = result.Elapsed.Seconds()
		nice, err := json.MarshalIndent(report, "", "  ")
		pretty.Guard(err == nil, exitSerialization, "%v", err)
		common.Stdout("%s\n", nice)
	} else {
		rows := []pretty.SummaryRow{
			{Label: "root", Value: result.Root},
			{Label: "output", Value: result.Output},
			{Label: "packages", Value: fmt.Sprintf("%d", result.Packages)},
			{Label: "skipped", Value: fmt.Sprintf("%d", len(result.Skipped))},
			{Label: "fingerprint", Value: result.Fingerprint},
		}
		common.Log("%s", pretty.Summary("Inventory", rows, stageRows(result.Stages)))
		if len(result.Skipped) > 0 {
			pretty.Note("%d unreadable packages were skipped, see warnings above.", len(result.Skipped))
		}
		common.Stdout("Wrote sbom: %s\n", result.Output)
	}
	pretty.Ok()
}
