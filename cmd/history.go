package cmd

import (
	"encoding/json"
	"time"

	"github.com/joshyorko/rpms2sbom/common"
	"github.com/joshyorko/rpms2sbom/journal"
	"github.com/joshyorko/rpms2sbom/pretty"
	"github.com/joshyorko/rpms2sbom/sbom"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List earlier inventory runs recorded in the journal.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		events, err := journal.Events()
		pretty.Guard(err == nil, exitSetup, "Error: reading %s failed: %v", journal.Location(), err)
		if historyLimit > 0 && len(events) > historyLimit {
			events = events[len(events)-historyLimit:]
		}
		if jsonFlag {
			nice, err := json.MarshalIndent(events, "", "  ")
			pretty.Guard(err == nil, exitSerialization, "%v", err)
			common.Stdout("%s\n", nice)
			return
		}
		for _, event := range events {
			when := time.Unix(event.When, 0).UTC().Format(sbom.TimeFormat)
			common.Stdout("%s %-8s %4d %s %s -> %s\n", when, event.Event, event.Packages, event.Fingerprint, event.Root, event.Output)
		}
		common.Log("%d runs in %s", len(events), journal.Location())
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "show only this many latest runs (0 for all)")
	historyCmd.Flags().BoolVarP(&jsonFlag, "json", "j", false, "print the runs as JSON")
}
