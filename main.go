package main

import "github.com/billwiliams/fyyur/cmd"

func main() {
	cmd.Execute()
}
