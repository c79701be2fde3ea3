package main

import "github.com/jeschkies/go-find4/internal/cli"

func main() {
	cli.Execute()
}
