package cfload_test

import (
	"fmt"
	"time"

	"github.com/lwmacct/251219-go-pkg-macro/pkg/cfload"
)

// Example_exampleYAML 演示根据配置结构体生成带注释的 YAML 示例。
func Example_exampleYAML() {
	type server struct {
		Host string `json:"host" desc:"监听地址"`
		Port int    `json:"port" desc:"端口"`
	}
	type appConfig struct {
		Name    string        `json:"name" desc:"应用名称"`
		Debug   bool          `json:"debug"`
		Timeout time.Duration `json:"timeout" desc:"超时时间"`
		Server  server        `json:"server" desc:"服务配置"`
	}

	cfg := appConfig{
		Name:    "example-app",
		Timeout: 30 * time.Second,
		Server:  server{Host: "localhost", Port: 8080},
	}

	fmt.Println(string(cfload.ExampleYAML(cfg)))

	// Output:
	// # 配置示例文件, 复制此文件为 config.yaml 并根据需要修改
	// name: 'example-app' # 应用名称
	// debug: false
	// timeout: 30s # 超时时间
	//
	// # 服务配置
	// server:
	//   host: 'localhost' # 监听地址
	//   port: 8080 # 端口
}

// Example_load 演示配置文件缺失时回落到默认值。
func Example_load() {
	type config struct {
		Name  string `json:"name"`
		Debug bool   `json:"debug"`
	}

	cfg, err := cfload.Load(config{Name: "default-app"},
		cfload.WithPaths("nonexistent.yaml"),
	)
	if err != nil {
		fmt.Println("load failed:", err)

		return
	}

	fmt.Println("Name:", cfg.Name)
	fmt.Println("Debug:", cfg.Debug)

	// Output:
	// Name: default-app
	// Debug: false
}

// Example_marshalJSON 演示根据配置结构体生成缩进 JSON。
func Example_marshalJSON() {
	type config struct {
		Name  string `json:"name"`
		Debug bool   `json:"debug"`
	}

	fmt.Println(string(cfload.MarshalJSON(config{Name: "example-app"})))

	// Output:
	// {
	//   "name": "example-app",
	//   "debug": false
	// }
}
