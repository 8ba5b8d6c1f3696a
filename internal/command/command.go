// Package command 提供各子命令共享的配置加载与宏值来源组装。
package command

import (
	"fmt"
	"regexp"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-macro/internal/config"
	"github.com/lwmacct/251219-go-pkg-macro/pkg/cfload"
	"github.com/lwmacct/251219-go-pkg-macro/pkg/macro"
)

// AppName 应用名称，决定默认配置搜索路径（.macro.yaml 等）。
const AppName = "macro"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// LoadConfig 按 默认值 → 配置文件 → 环境变量 → CLI flags 加载配置。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	return cfload.Load(config.DefaultConfig(),
		cfload.WithAppName(AppName),
		cfload.WithEnvPrefix("MACRO_"),
		cfload.WithCommand(cmd),
		cfload.WithCallerSkip(2),
	)
}

// Provider 按配置组装宏值来源链：宏表优先，其次环境变量。
func Provider(cfg *config.Config) macro.ValueProvider {
	providers := []macro.ValueProvider{macro.MapProvider(cfg.Macros)}
	if cfg.UseEnv {
		providers = append(providers, macro.EnvProvider{})
	}

	return macro.Chain(providers...)
}

// ApplyPattern 应用配置中的自定义宏名正则（自动锚定整串匹配）。
func ApplyPattern(cfg *config.Config) error {
	if cfg.Pattern == "" {
		return nil
	}

	re, err := regexp.Compile("^(?:" + cfg.Pattern + ")$")
	if err != nil {
		return fmt.Errorf("invalid macro name pattern %q: %w", cfg.Pattern, err)
	}
	macro.NamePattern = re

	return nil
}
