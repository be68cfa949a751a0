package main

import "github.com/stain-win/passaudit/cmd"

func main() {
	cmd.Execute()
}
