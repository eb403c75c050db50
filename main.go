package main

import "github.com/ajkingio/git-report-gen/cmd"

func main() {
	cmd.Run()
}
