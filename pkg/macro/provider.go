package macro

import (
	"os"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 值来源
// ═══════════════════════════════════════════════════════════════════════════

// ValueProvider 宏名到值的查询能力。
//
// 第二个返回值为 false 表示宏未定义。实现必须可重入：
// 一次 [Resolve] 过程中同一个名字可能被查询多次，
// 解析中途新出现的名字也会触发查询。
type ValueProvider interface {
	Lookup(name string) (string, bool)
}

// ProviderFunc 把函数适配为 [ValueProvider]。
type ProviderFunc func(name string) (string, bool)

func (f ProviderFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// MapProvider 内存宏表。
type MapProvider map[string]string

func (m MapProvider) Lookup(name string) (string, bool) {
	value, ok := m[name]

	return value, ok
}

// Set 写入或覆盖一个宏定义。
func (m MapProvider) Set(name, value string) {
	m[name] = value
}

// EnvProvider 以进程环境变量为宏值来源（实时查询）。
type EnvProvider struct{}

func (EnvProvider) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// SnapshotEnv 返回当前环境变量的快照宏表。
//
// 与 [EnvProvider] 不同，快照之后环境变量的变化不会影响解析结果。
func SnapshotEnv() MapProvider {
	m := make(MapProvider)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}

	return m
}

// Chain 按顺序组合多个来源，先命中者生效（内层作用域遮蔽外层）。
func Chain(providers ...ValueProvider) ValueProvider {
	return chain(providers)
}

type chain []ValueProvider

func (c chain) Lookup(name string) (string, bool) {
	for _, p := range c {
		if value, ok := p.Lookup(name); ok {
			return value, true
		}
	}

	return "", false
}
