// Package expand 提供宏展开命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-macro/internal/command"
)

// Command 展开命令
var Command = &cli.Command{
	Name:      "expand",
	Usage:     "展开文本中的宏",
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
		&cli.BoolFlag{
			Name:  "strict",
			Value: command.Defaults.Strict,
			Usage: "输出仍含可解析宏名时报错",
		},
		&cli.StringFlag{
			Name:  "pattern",
			Value: command.Defaults.Pattern,
			Usage: "自定义宏名正则",
		},
	},
}
