package main

import "bwgraph/cmd"

// @title bwgraph API
// @version 1.0
// @description Bandwidth charts built from vnstat traffic documents.
// @BasePath /
func main() {
	cmd.Execute()
}
