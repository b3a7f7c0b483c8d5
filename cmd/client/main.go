package main

import "github.com/JackchrisO/Synapse/cmd/client/cmd"

func main() {
	cmd.Execute()
}
