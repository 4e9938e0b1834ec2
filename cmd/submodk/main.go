// Command submodk is the CLI entry point: it just hands off to the
// command tree in internal/cli.
package main

import "github.com/katalvlaran/submodk/internal/cli"

func main() {
	cli.Execute()
}
