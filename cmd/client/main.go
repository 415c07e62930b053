package main

import "vokabular/cmd/client/cmd"

func main() {
	cmd.Execute()
}
