package main

import (
	"github.com/NVIDIA/version-organizer/pkg/cli"
)

func main() {
	cli.Execute()
}
