package main

import "gamedo/cmd/gd/root"

func main() {
	root.Execute()
}
