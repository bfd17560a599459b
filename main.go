package main

import "github.com/ajaykumar8188/lubes-management/cmd"

func main() {
	cmd.Execute()
}
