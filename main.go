package main

import "github.com/crazyrex/Rainbow-CLI-SDK/cmd"

// Version can be set during build with -ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
