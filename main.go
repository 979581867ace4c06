package main

import "github.com/duskmantle/tavernsim/cmd"

func main() {
	cmd.Execute()
}
