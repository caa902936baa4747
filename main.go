package main

import "github.com/yext/minihttpd/cmd"

func main() {
	cmd.Execute()
}
