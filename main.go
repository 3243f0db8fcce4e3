package main

import "github.com/aparfeno/smartdirs/cmd"

func main() {
	cmd.Execute()
}
