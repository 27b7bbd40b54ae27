package main

import "github.com/notargets/gointerp/cmd"

func main() {
	cmd.Execute()
}
