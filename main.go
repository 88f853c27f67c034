package main

import "github.com/KaramelBytes/doco-cli/cmd"

func main() {
	cmd.Execute()
}
