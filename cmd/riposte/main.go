package main

import (
	"github.com/wesleyorama2/riposte/internal/cli"
)

func main() {
	cli.Execute()
}
