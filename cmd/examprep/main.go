package main

import "github.com/eslsoft/examprep/cmd"

func main() {
	cmd.Execute()
}
