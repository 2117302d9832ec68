package main

import "lexicon-manager/cmd"

func main() {
	cmd.Execute()
}
