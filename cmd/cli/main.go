package main

import "redeploy/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
