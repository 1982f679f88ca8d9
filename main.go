package main

import (
	"os"

	"github.com/decker502/moktak/internal/cli"
	"github.com/decker502/moktak/pkg/embedded"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	code := cli.Execute(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}, cli.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}, os.Args[1:])
	os.Exit(code)
}
