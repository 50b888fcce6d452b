package main

import "github.com/ondrask/gemini-mcp/cmd"

func main() {
	cmd.Execute()
}
