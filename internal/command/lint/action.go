package lint

import (
	"context"
	"fmt"
	"io"
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

	names := macro.Names(input)
	if len(names) == 0 {
		fmt.Println("no macros referenced")

		return nil
	}

	provider := command.Provider(cfg)
	var missing []string
	for _, name := range names {
		value, ok := provider.Lookup(name)
		if ok {
			fmt.Printf("%s = %s\n", name, value)
		} else {
			fmt.Printf("%s (undefined)\n", name)
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("lint: %d undefined macro(s): %s", len(missing), strings.Join(missing, ", "))
	}

	return nil
}

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
