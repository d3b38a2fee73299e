// ABOUTME: Entry point for the infoflow chat client
// ABOUTME: Hands control to the cobra command tree

package main

import "github.com/harper/infoflow/internal/commands"

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	commands.Version = version
	commands.BuildTime = buildTime
	commands.Execute()
}
