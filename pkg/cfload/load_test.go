package cfload_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251219-go-pkg-macro/pkg/cfload"
	"github.com/lwmacct/251219-go-pkg-macro/pkg/macro"
)

type serverConfig struct {
	Host    string        `json:"host"`
	Port    int           `json:"port"`
	Timeout time.Duration `json:"timeout"`
}

type testConfig struct {
	Name   string            `json:"name"`
	Debug  bool              `json:"debug"`
	Labels map[string]string `json:"labels"`
	Server serverConfig      `json:"server"`
}

func defaultTestConfig() testConfig {
	return testConfig{
		Name: "default-app",
		Server: serverConfig{
			Host:    "localhost",
			Port:    8080,
			Timeout: 30 * time.Second,
		},
	}
}

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := cfload.Load(defaultTestConfig(),
		cfload.WithPaths("nonexistent.yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, "default-app", cfg.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
name: from-file
debug: true
server:
  host: db01
  timeout: 45s
`)

	cfg, err := cfload.Load(defaultTestConfig(), cfload.WithPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Name)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "db01", cfg.Server.Host)
	// 未出现在文件里的 key 保持默认值
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
}

func TestLoad_MacroExpansion(t *testing.T) {
	t.Setenv("CFLOAD_TEST_HOST", "db02")

	path := writeTempConfig(t, "config.yaml", `
name: $(CFLOAD_TEST_NAME=fallback-name)
server:
  host: $(CFLOAD_TEST_HOST)
`)

	cfg, err := cfload.Load(defaultTestConfig(), cfload.WithPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "db02", cfg.Server.Host, "环境变量应当作为宏值来源")
	assert.Equal(t, "fallback-name", cfg.Name, "未定义的宏应当落到默认值")
}

func TestLoad_WithProvider(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `name: $(APP)`)

	cfg, err := cfload.Load(defaultTestConfig(),
		cfload.WithPaths(path),
		cfload.WithProvider(macro.MapProvider{"APP": "injected"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "injected", cfg.Name)
}

func TestLoad_WithoutExpansion(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `name: $(APP=x)`)

	cfg, err := cfload.Load(defaultTestConfig(),
		cfload.WithPaths(path),
		cfload.WithoutExpansion(),
	)
	require.NoError(t, err)
	assert.Equal(t, "$(APP=x)", cfg.Name)
}

func TestLoad_ExpansionFailure(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `name: $(A)`)

	_, err := cfload.Load(defaultTestConfig(),
		cfload.WithPaths(path),
		cfload.WithProvider(macro.MapProvider{"A": "$(B)", "B": "$(A)"}),
	)
	require.Error(t, err)

	var recErr *macro.RecursionError
	assert.ErrorAs(t, err, &recErr)
}

func TestLoad_EnvPrefixOverrides(t *testing.T) {
	t.Setenv("CFLOADT_SERVER_PORT", "9000")
	t.Setenv("CFLOADT_NAME", "from-env")

	cfg, err := cfload.Load(defaultTestConfig(),
		cfload.WithPaths("nonexistent.yaml"),
		cfload.WithEnvPrefix("CFLOADT_"),
	)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoad_JSONByExtension(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"name": "json-app", "debug": true}`)

	cfg, err := cfload.Load(defaultTestConfig(), cfload.WithPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "json-app", cfg.Name)
	assert.True(t, cfg.Debug)
}

func TestLoad_FirstHitWins(t *testing.T) {
	first := writeTempConfig(t, "first.yaml", `name: first`)
	second := writeTempConfig(t, "second.yaml", `name: second`)

	cfg, err := cfload.Load(defaultTestConfig(), cfload.WithPaths(first, second))
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Name)
}

func TestLoad_BadFile(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", "name: [unclosed")

	_, err := cfload.Load(defaultTestConfig(), cfload.WithPaths(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestDefaultPaths(t *testing.T) {
	assert.Len(t, cfload.DefaultPaths(""), 2)
	assert.Len(t, cfload.DefaultPaths("myapp"), 5)
}

func TestFindProjectRoot(t *testing.T) {
	root, err := cfload.FindProjectRoot(0)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "go.mod"))
}
