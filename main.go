package main

import "github.com/Dhanushsk16/BBL434-DhanushSk/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
