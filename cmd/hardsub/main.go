package main

import "github.com/thuralin/hardsub/internal/cli"

func main() {
	cli.Main()
}
