// Command hashlife is the CLI host for the hashlife engine: it loads a
// pattern file, drives a Universe through generations, and reports
// population, bounds, and renderings.
package main

import "github.com/noctilu/hashlife/cmd/hashlife/cmd"

func main() {
	cmd.Execute()
}
