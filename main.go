package main

import "github.com/okabe-dev/yt-scribe/cmd"

func main() {
	cmd.Execute()
}
