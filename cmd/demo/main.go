package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"mesh-demo/internal/commands"
)

func main() {
	reg := commands.NewRegistry()
	registerRun(reg)
	registerMesh(reg, os.Stdout)
	registerArea(reg, os.Stdout)

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"run"}
	}
	if err := reg.Execute(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "demo:", err)
		reg.Usage(os.Stderr, "demo")
		os.Exit(1)
	}
}
