package main

import "github.com/seo-optimizer/contentseo/cmd"

func main() {
	cmd.Execute()
}
