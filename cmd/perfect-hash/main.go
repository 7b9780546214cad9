// Command perfect-hash is the CLI front end for the perfect-hash
// library: it reads a keys file (and optionally a code template), builds
// a minimal perfect hash function, and writes the emitted code. The core
// algorithm lives in the generator, hashfamily, graph, format, and
// codegen packages; this command is glue only (spec §1, §6).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilanschnell/perfect-hash/internal/cli"
)

func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			os.Exit(invErr.ExitCode)
		}
		os.Exit(cli.ExitInvalidInvocation)
	}

	code, err := cli.Run(inv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}
