// Command lvkit exposes the lvkit helpers on the command line.
package main

import "github.com/katalvlaran/lvkit/internal/cli"

func main() {
	cli.Execute()
}
