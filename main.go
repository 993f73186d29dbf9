package main

import "modhangar/cmd"

func main() {
	cmd.Execute()
}
