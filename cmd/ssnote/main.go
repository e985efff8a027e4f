package main

import "ssnote/cmd/ssnote/commands"

func main() {
	commands.Execute()
}
