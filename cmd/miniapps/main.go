// Package main is the entry point for the mini apps server.
package main

import "miniapps/cmd/miniapps/cmd"

// Version information - set by build flags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	cmd.Execute()
}
