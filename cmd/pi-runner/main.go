/*
PURPOSE:
  Entry point for the Pi Runner application.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - Must serve as the single binary entry point.
  - Exit non-zero on invalid arguments or failed runs.

  Implementation-discovered:
  - Uses cobra for CLI command management.
  - Invalid arguments get their own exit code (2).

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()
  - Depends on: internal/cli package

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 2 for invalid arguments, 1 otherwise.

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.
  - Do not put business logic here.

USAGE:
  go build -o pi-runner ./cmd/pi-runner
  ./pi-runner [command] [flags]

SELF-HEALING INSTRUCTIONS:
  - If CLI fails to start, check internal/cli/root.go definition.
  - If imports fail, run `go mod tidy`.

RELATED FILES:
  - internal/cli/root.go - The actual root command definition.

MAINTENANCE:
  - Update when changing the CLI framework or exit code mapping.
*/

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/daryltucker/pi-runner/internal/cli"
	"github.com/daryltucker/pi-runner/internal/model"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, model.ErrInvalidArgument) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
