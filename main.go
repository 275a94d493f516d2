package main

import "article-stream/cmd"

func main() {
	cmd.Execute()
}
