// Package main is the entry point for the codetrail CLI.
package main

import (
	"github.com/codetrail/codetrail/cmd"
	"github.com/codetrail/codetrail/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run codetrail", err)
	}
}
