package main

import "github.com/aalvaropc/mathsheets/internal/cli"

func main() {
	cli.Execute()
}
