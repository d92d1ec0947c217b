package main

import "github.com/jinxindev/simplybeam/cmd"

func main() {
	cmd.Execute()
}
