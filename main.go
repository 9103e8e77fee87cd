package main

import "github.com/twiced-technology-gmbh/ttd/cmd"

func main() {
	cmd.Execute()
}
