// Package cfload 提供通用的配置加载功能。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 由 json tag 统一描述，YAML 与 JSON 共用同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - defaults 参数
//  2. 配置文件 - [WithPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]，仅用户显式设置的生效
//
// # 宏展开
//
// 配置文件内容在解析前经过 [macro.Resolve] 展开，
// 默认以进程环境变量为值来源：
//
//	# config.yaml
//	api_key: "$(OPENAI_API_KEY)"
//	model: "$(LLM_MODEL=gpt-4)"
//
// 通过 [WithProvider] 可注入其他来源，[WithoutExpansion] 可禁用。
//
// # 快速开始
//
// 定义配置结构体（json + desc 标签）并加载：
//
//	type Config struct {
//	    Name    string        `json:"name"    desc:"应用名称"`
//	    Timeout time.Duration `json:"timeout" desc:"超时时间"`
//	}
//
//	cfg, err := cfload.Load(DefaultConfig(),
//	    cfload.WithAppName("myapp"),
//	    cfload.WithEnvPrefix("MYAPP_"),
//	    cfload.WithCommand(cmd),
//	)
//
// 使用 [ExampleYAML] 生成带注释的示例文件。
//
// [macro.Resolve]: github.com/lwmacct/251219-go-pkg-macro/pkg/macro#Resolve
package cfload
