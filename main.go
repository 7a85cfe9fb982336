package main

import (
	"os"

	"github.com/lukind/worddiff/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
