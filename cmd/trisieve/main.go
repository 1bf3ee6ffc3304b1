package main

import (
	"os"

	"github.com/dshills/trisieve/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
