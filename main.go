package main

import "github.com/koki-develop/imoji/cmd"

func main() {
	cmd.Execute()
}
