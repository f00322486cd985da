package main

import "github.com/KaramelBytes/autoreport/cmd"

func main() {
	cmd.Execute()
}
