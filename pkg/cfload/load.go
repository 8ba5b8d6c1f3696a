package cfload

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lwmacct/251219-go-pkg-macro/pkg/macro"
)

// Load 按优先级合并配置并解码到 T。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaults 参数
//  2. 配置文件 - [WithPaths] / [WithAppName]，命中首个文件即停止
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]，仅用户显式设置的生效
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共用同一套 key。
// 配置文件内容在解析前先经过宏展开（见 [WithProvider] / [WithoutExpansion]）。
func Load[T any](defaults T, opts ...Option) (*T, error) {
	return load(defaults, 1, opts...)
}

// MustLoad 调用 [Load]，失败时 panic，适合启动阶段。
func MustLoad[T any](defaults T, opts ...Option) *T {
	cfg, err := load(defaults, 1, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfload: %v", err))
	}

	return cfg
}

func load[T any](defaults T, callerSkip int, opts ...Option) (*T, error) {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.callerSkip > 0 {
		callerSkip = o.callerSkip
	}
	if !o.baseDirSet {
		if root, err := FindProjectRoot(callerSkip + 1); err == nil {
			o.baseDir = root
		}
	}
	if len(o.paths) == 0 {
		o.paths = DefaultPaths(o.appName)
	}

	merged := structToMap(defaults)

	// 配置文件：按顺序查找，命中即停
	for _, path := range searchPaths(o) {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue
		}

		if !o.noExpansion {
			expanded, err := macro.Resolve(o.provider, string(content))
			if err != nil {
				return nil, fmt.Errorf("expand macros in %s: %w", path, err)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(merged, fileMap)

		slog.Debug("Loaded config file", "path", path, "expansion", !o.noExpansion)

		break
	}

	// 环境变量覆盖
	if o.envPrefix != "" {
		for envName, key := range envBindings(o.envPrefix, scalarKeys(defaults)) {
			if val := os.Getenv(envName); val != "" {
				setByPath(merged, key, val)
				slog.Debug("Applied env override", "env", envName, "key", key)
			}
		}
	}

	// CLI flags 覆盖
	if o.cmd != nil {
		applyFlags(o.cmd, merged, defaults)
	}

	var cfg T
	if err := decode(merged, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

func searchPaths(o *options) []string {
	if o.baseDir == "" {
		return o.paths
	}

	paths := make([]string, len(o.paths))
	for i, p := range o.paths {
		if filepath.IsAbs(p) {
			paths[i] = p
		} else {
			paths[i] = filepath.Join(o.baseDir, p)
		}
	}

	return paths
}
