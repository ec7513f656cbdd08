package main

import (
	"os"

	"github.com/deppfellow/products-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
