package main

import (
	"os"

	"tienda/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
