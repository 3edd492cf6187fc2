package main

import "github.com/papapumpkin/warden/cmd"

func main() {
	cmd.Execute()
}
