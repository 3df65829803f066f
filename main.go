package main

import (
	"github.com/clustalign/clustalign/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
