// Command cprog parses cprog source and lowers it to an abstract syntax tree.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
