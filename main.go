package main

import "github.com/LXGIC-Studios/cookie-check/cmd"

// execCmd is indirected so tests can stub the CLI entrypoint.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
