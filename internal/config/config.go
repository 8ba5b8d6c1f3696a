// Package config 提供宏工具的应用配置。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - .macro.yaml 等默认搜索路径
//  3. 环境变量 - MACRO_ 前缀
//  4. CLI flags
package config

// Config 应用配置。
type Config struct {
	Macros  map[string]string `json:"macros" desc:"宏定义表 (name → value)"`
	UseEnv  bool              `json:"use-env" desc:"将环境变量作为宏值来源"`
	Strict  bool              `json:"strict" desc:"输出仍含可解析宏名时报错"`
	Pattern string            `json:"pattern" desc:"自定义宏名正则 (空值使用内置规则)"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Macros: map[string]string{},
		UseEnv: true,
	}
}
