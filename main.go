package main

import "github.com/theirongolddev/habitgrid/cmd"

func main() {
	cmd.Execute()
}
