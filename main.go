package main

import "imagesearch/cmd"

func main() {
	cmd.Execute()
}
