// Where: cmd/keyprops/main.go
// What: CLI entrypoint.
// Why: Execute keyprops commands with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/poruru-code/keyprops/internal/command"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(command.Run(os.Args[1:], deps))
}
