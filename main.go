package main

import (
	"os"

	"github.com/leonardinius/zsharp/cmd"
)

func main() {
	app := cmd.NewZSharpApp()
	os.Exit(app.Main(os.Args[1:]))
}
