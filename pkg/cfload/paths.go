package cfload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultPaths 返回默认配置文件的搜索顺序（先命中者生效）。
//
// appName 非空时追加应用专属路径：
//  1. ./.appname.yaml
//  2. ~/.appname.yaml
//  3. /etc/appname/config.yaml
//  4. config.yaml
//  5. config/config.yaml
func DefaultPaths(appName string) []string {
	var paths []string

	if appName != "" {
		paths = append(paths, "."+appName+".yaml")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
		}
		paths = append(paths, "/etc/"+appName+"/config.yaml")
	}

	return append(paths, "config.yaml", "config/config.yaml")
}

// FindProjectRoot 从调用方源文件位置向上查找 go.mod 所在目录。
//
// skip 为调用栈跳过层数，0 表示 FindProjectRoot 的直接调用方。
func FindProjectRoot(skip int) (string, error) {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", errors.New("cfload: caller information unavailable")
	}

	dir := filepath.Dir(file)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("cfload: no go.mod above %s", filepath.Dir(file))
		}
		dir = parent
	}
}
