package main

import "github.com/josephlewis42/goosecli/cmd"

func main() {
	cmd.Execute()
}
