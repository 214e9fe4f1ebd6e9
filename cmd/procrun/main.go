package main

import "procrun/internal/cli"

func main() {
	cli.Execute()
}
