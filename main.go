package main

import (
	"github.com/osdev-tools/bootimage/cmd"
)

func main() {
	cmd.GetRootCommand().Execute()
}
