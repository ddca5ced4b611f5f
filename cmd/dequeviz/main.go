/*
Command dequeviz replays a script of deque operations and shows how the deque
organizes its elements into blocks.

	dequeviz [flags] script

Script syntax is described in package replay. By default the block layout is
printed once, after the last operation; with --steps it is printed after every
operation.
*/
package main

import (
	"os"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
