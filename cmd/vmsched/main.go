package main

import "vmsched/internal/cli"

func main() {
	cli.Execute()
}
