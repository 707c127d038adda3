package main

import "aacboard/cmd/aacboard-cli/cmd"

func main() {
	cmd.Execute()
}
