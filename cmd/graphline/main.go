// Package main provides the graphline CLI.
package main

import (
	"fmt"
	"os"

	"github.com/graphline-ml/graphline/loader"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("graphline %s\n", version)
			return
		case "inspect":
			os.Exit(inspect(os.Args[2:]))
		}
	}

	fmt.Println("graphline - real-time neural inference graphs from serialized models")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                    Show version")
	fmt.Println("  inspect [-strict] <file>   Load a model description and print its graph")
}

// inspect loads a model with tracing enabled and prints a layer summary.
func inspect(args []string) int {
	strict := false
	if len(args) > 0 && args[0] == "-strict" {
		strict = true
		args = args[1:]
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: graphline inspect [-strict] <model.json>")
		return 2
	}

	model, err := loader.ParseFile[float32](args[0],
		loader.WithStrict(strict),
		loader.WithTrace(os.Stderr),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		return 1
	}

	fmt.Printf("input width:  %d\n", model.InSize())
	fmt.Printf("output width: %d\n", model.OutSize())
	fmt.Printf("layers:       %d\n", model.Len())
	return 0
}
