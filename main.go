package main

import "blocks-generator/cmd"

func main() {
	cmd.Execute()
}
