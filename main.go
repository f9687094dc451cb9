package main

import "github.com/imobot-dz/imobot-cli/cmd"

func main() {
	cmd.Execute()
}
