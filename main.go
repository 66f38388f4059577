package main

import "cloudmason/provm/cmd"

func main() {
	cmd.Execute()
}
