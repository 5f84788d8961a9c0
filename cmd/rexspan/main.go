package main

import (
	"os"

	"github.com/coregx/rexspan/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
