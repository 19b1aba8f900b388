package main

import (
	"os"

	"github.com/joshyorko/rpms2sbom/cmd"
	"github.com/joshyorko/rpms2sbom/common"
)

func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		common.WaitLogs()
		panic(status)
	}
	common.WaitLogs()
}

func main() {
	defer ExitProtection()

	cmd.Execute()
}
