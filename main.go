package main

import "github.com/mgamesdev/docfx-markdown-gen/cmd"

func main() {
	cmd.Execute()
}
