package main

import "github.com/koki-develop/asciify/cmd"

func main() {
	cmd.Execute()
}
