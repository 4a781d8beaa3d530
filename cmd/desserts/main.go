package main

import (
	"os"

	"dessert-catalog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
