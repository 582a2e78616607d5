package main

import "github.com/tse-options/analyzer-bundler/cmd/analyzer-bundler/cmd"

func main() {
	cmd.Execute()
}
