// Package lint 提供宏引用检查命令。
package lint

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-macro/internal/command"
)

// Command 检查命令：只报告文本引用的宏名及其可解析性，不改写文本。
var Command = &cli.Command{
	Name:      "lint",
	Usage:     "检查文本引用的宏是否可解析",
	ArgsUsage: "[text]",
	Action:    action,
	Flags: []cli.Flag{
		&cli.StringMapFlag{
			Name:    "macros",
			Aliases: []string{"m"},
			Value:   command.Defaults.Macros,
			Usage:   "宏定义 (name=value，可重复)",
		},
		&cli.BoolFlag{
			Name:  "use-env",
			Value: command.Defaults.UseEnv,
			Usage: "将环境变量作为宏值来源",
		},
		&cli.StringFlag{
			Name:  "pattern",
			Value: command.Defaults.Pattern,
			Usage: "自定义宏名正则",
		},
	},
}
