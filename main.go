// main is the entry point for the gitreport CLI.
package main

import (
	"github.com/huangsam/gitreport/cmd"
	"github.com/huangsam/gitreport/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Cannot generate report", err)
	}
}
