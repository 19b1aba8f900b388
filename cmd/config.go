package cmd

import (
	"github.com/joshyorko/rpms2sbom/common"
	"github.com/joshyorko/rpms2sbom/pretty"
	"github.com/joshyorko/rpms2sbom/settings"
	"github.com/joshyorko/rpms2sbom/xviper"
	"github.com/spf13/cobra"
)

var defaultsFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as YAML.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if defaultsFlag {
			defaults, err := settings.Defaults()
			pretty.Guard(err == nil, exitSetup, "Error: %v", err)
			blob, err := defaults.AsYaml()
			pretty.Guard(err == nil, exitSetup, "Error: %v", err)
			common.Stdout("%s", blob)
			return
		}
		blob, err := settings.Global.AsYaml()
		pretty.Guard(err == nil, exitSetup, "Error: %v", err)
		if used := xviper.ConfigFileUsed(); len(used) > 0 {
			common.Log("Settings file: %s", used)
		} else {
			common.Log("Settings file: none (looked for %s)", common.ToolMode().SettingsFile())
		}
		common.Stdout("%s", blob)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVarP(&defaultsFlag, "defaults", "", false, "print the built-in default settings instead")
}
