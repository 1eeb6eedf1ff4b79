package main

import "github.com/creativeprojects/folders/cmd"

// values overridden by the build
var (
	version = "0.1.0-dev"
	commit  = ""
	date    = ""
	builtBy = ""
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
