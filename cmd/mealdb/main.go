// cmd/mealdb/main.go
package main

import (
	"github.com/mwiater/mealdb/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the mealdb CLI by delegating to the cobra root command.
func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
