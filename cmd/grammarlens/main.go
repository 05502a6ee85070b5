package main

import (
	"os"

	"japanesegrammar/cli"
)

func main() {
	os.Exit(cli.Execute())
}
