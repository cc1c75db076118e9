package main

import "github.com/chrisdamba/transitsim/cmd"

func main() {
	cmd.Execute()
}
