package main

import "github.com/jsphweid/scaledex/cmd"

func main() {
	cmd.Execute()
}
