package main

import "noteworthy/cmd/noteworthy-cli/cmd"

func main() {
	cmd.Execute()
}
