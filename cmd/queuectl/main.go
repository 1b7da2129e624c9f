// Command queuectl is the operator CLI for the job queue: enqueue jobs,
// start and stop worker processes, inspect status and the dead-letter
// queue, and read per-attempt logs.
//
// Grounded on the cobra usage in
// _examples/Napageneral-eve/cmd/eve/main.go, adapted to this repo's
// smaller, fixed command surface (spec.md §6).
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
