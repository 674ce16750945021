package main

import "github.com/tanq16/cwdl/cmd"

func main() {
	cmd.Execute()
}
