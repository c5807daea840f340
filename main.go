package main

import "github.com/wasabi0522/dxflow/cmd"

func main() {
	cmd.Execute()
}
