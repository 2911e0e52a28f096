// pgmgen writes dynamic Bayesian network benchmark models.
//
// Usage:
//
//	pgmgen <n> <j> [--out-dir=models] [--mkdir] [--format=pgm|yaml] [--stdout]
//	pgmgen sweep --max-horizon=<N> --max-complexity=<J> [--jobs=<k>]
//	pgmgen version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
