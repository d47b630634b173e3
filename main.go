package main

import "gomate/cmd"

func main() {
	cmd.Execute()
}
