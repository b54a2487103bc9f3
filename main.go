package main

import (
	"os"

	"pegen/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
