package cfload

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-macro/pkg/macro"
)

// options 加载选项。
type options struct {
	appName     string
	paths       []string
	baseDir     string
	baseDirSet  bool
	envPrefix   string
	cmd         *cli.Command
	provider    macro.ValueProvider // 配置文件宏展开的值来源
	noExpansion bool
	callerSkip  int
}

func newOptions() *options {
	return &options{
		provider: macro.EnvProvider{},
	}
}

// Option 加载选项函数。
type Option func(*options)

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithPaths 设置配置文件搜索路径，按顺序查找，命中首个文件即停止。
//
// 相对路径基于 [WithBaseDir]（默认为项目根目录）解析。
func WithPaths(paths ...string) Option {
	return func(o *options) {
		o.paths = paths
	}
}

// WithBaseDir 设置相对路径的解析基准，空字符串表示当前工作目录。
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
		o.baseDirSet = true
	}
}

// WithEnvPrefix 启用环境变量覆盖。
//
// 变量名为前缀加大写配置 key，"." 和 "-" 转为 "_"。
// 例如前缀 "APP_" 时，expand.strict 对应 APP_EXPAND_STRICT。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithCommand 绑定 CLI 命令，用户显式设置的 flags 覆盖配置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithProvider 设置配置文件宏展开的值来源，默认为进程环境变量。
func WithProvider(p macro.ValueProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithoutExpansion 禁用配置文件的宏展开，保留原始 $(...) 文本。
func WithoutExpansion() Option {
	return func(o *options) {
		o.noExpansion = true
	}
}

// WithCallerSkip 设置 [FindProjectRoot] 的调用栈跳过层数。
//
// [Load] 被多层封装时用于修正项目根目录定位；
// 已通过 [WithBaseDir] 指定基准目录时不生效。
func WithCallerSkip(skip int) Option {
	return func(o *options) {
		o.callerSkip = skip
	}
}
