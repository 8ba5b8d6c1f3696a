package expand

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-macro/internal/command"
	"github.com/lwmacct/251219-go-pkg-macro/pkg/macro"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if err := command.ApplyPattern(cfg); err != nil {
		return err
	}

	input, err := readInput(cmd)
	if err != nil {
		return err
	}
	if !macro.ContainsMacros(input) {
		fmt.Println(input)

		return nil
	}

	slog.Debug("Expanding input", "bytes", len(input), "useEnv", cfg.UseEnv)

	result, err := macro.Resolve(command.Provider(cfg), input)
	if err != nil {
		return fmt.Errorf("expand: %w", err)
	}

	if cfg.Strict {
		if names := macro.Names(result); len(names) > 0 {
			return fmt.Errorf("expand: unresolved macros: %s", strings.Join(names, ", "))
		}
	}

	fmt.Println(result)

	return nil
}

// readInput 取命令行参数为输入，无参数时读取 stdin。
func readInput(cmd *cli.Command) (string, error) {
	if args := cmd.Args().Slice(); len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimRight(string(data), "\n"), nil
}
