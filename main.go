package main

import "github.com/hance08/tankhah/cmd"

func main() {
	cmd.Execute()
}
