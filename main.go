package main

import "taskloop/cmd"

func main() {
	cmd.Run()
}
