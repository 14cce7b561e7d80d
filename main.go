package main

import "github.com/KaramelBytes/ehrqc-cli/cmd"

func main() {
	cmd.Execute()
}
