package main

import (
	"fmt"
	"os"

	"github.com/lihongjie0209/cryptocore/cmd/cryptocore/internal/commands"
	"github.com/lihongjie0209/cryptocore/cmd/cryptocore/internal/config"
)

var version = "dev"

func main() {
	cfg := config.Default()
	root := commands.NewRootCommand(cfg, version)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
