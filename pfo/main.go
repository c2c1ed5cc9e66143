package main

import (
	"context"
	"os"

	"github.com/mkarren/optifolio/cmd"
)

func main() {
	os.Exit(cmd.Run(context.Background()))
}
