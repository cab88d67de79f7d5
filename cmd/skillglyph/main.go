package main

import "github.com/caiohportella/skillglyph/internal/cli"

func main() {
	cli.Execute()
}
