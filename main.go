package main

import "varnix-dashboard/cli"

func main() {
	cli.Execute()
}
