package main

import "github.com/jaekwonkang/gomines/cmd"

func main() {
	cmd.Execute()
}
