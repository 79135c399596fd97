// Package main is the entry point for the playwright-ai CLI.
package main

import "github.com/tomodakengo/playwright-ai/cmd"

func main() {
	cmd.Execute()
}
