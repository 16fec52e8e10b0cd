package main

import (
	"fmt"
	"os"

	"github.com/go-as2js/as2js/cmd/as2js/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
