package main

import "github.com/mmuldo/prism/cmd"

func main() {
	cmd.Execute()
}
