package main

import "github.com/rpgo/savings-projector/cmd"

func main() {
	cmd.Execute()
}
