// Package main is the entry point for the bqbridge CLI application.
// It exposes Google BigQuery operations (dataset/table discovery, schema
// inspection, query execution) through a synchronous command dispatcher,
// usable both from the terminal and as an MCP stdio server.
package main

import (
	"bqbridge/cli/cmd"
)

// main is the entry point for the bqbridge CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
