package main

import "github.com/mkazemie/github-profile-generator/internal/cli"

func main() {
	cli.Execute()
}
