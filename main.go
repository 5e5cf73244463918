package main

import (
	"os"

	"github.com/devbush/img2jxl/internal/adapters/cli"
)

func main() {
	os.Exit(cli.Execute())
}
