package main

import (
	"github.com/psellars/cardtable/internal/cli"
)

func main() {
	cli.Execute()
}
