package main

import "github.com/hurou927/netgraph/cmd"

func main() {
	cmd.Execute()
}
