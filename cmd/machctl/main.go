package main

import "github.com/mcoot/machgame/internal/cli"

func main() {
	cli.Execute()
}
