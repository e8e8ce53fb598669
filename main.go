package main

import "github.com/naka-gawa/github-repos/cmd"

func main() {
	cmd.Execute()
}
