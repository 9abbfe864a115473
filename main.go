package main

import "count-diff/cmd"

func main() {
	cmd.Execute()
}
