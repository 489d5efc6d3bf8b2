package main

import "github.com/user/hmdscan/cmd"

func main() {
	cmd.Execute()
}
