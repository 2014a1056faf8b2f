package main

import (
	"os"

	"github.com/arthur-debert/ssmuse/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.DefaultRuntime(), os.Args[1:]))
}
