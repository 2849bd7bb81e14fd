package main

import (
	"github.com/sw33tLie/svcbook/cmd"
)

func main() {
	cmd.Execute()
}
