package main

import (
	"github.com/outlierai/outlier/pkg/cli/cmd"
	"github.com/outlierai/outlier/pkg/version"
)

func main() {
	version.SetComponent("outlier")
	cmd.Execute()
}
