package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-macro/internal/command"
	"github.com/lwmacct/251219-go-pkg-macro/internal/command/expand"
	"github.com/lwmacct/251219-go-pkg-macro/internal/command/lint"
)

// version 构建时通过 -ldflags "-X main.version=..." 注入。
var version = "dev"

func main() {
	app := &cli.Command{
		Name:    command.AppName,
		Usage:   "文本宏替换工具",
		Version: version,
		Commands: []*cli.Command{
			expand.Command,
			lint.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
