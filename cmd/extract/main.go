package main

import (
	"fmt"
	"os"
	_ "time/tzdata" // --tz on hosts without a system zoneinfo

	"task-nlp/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(os.Stdout, os.Stdin).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
