package main

import "github.com/jsphweid/musika/cmd"

func main() {
	cmd.Execute()
}
