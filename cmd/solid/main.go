// Command solid is the SOLID course from the terminal: list the principles,
// show and narrate a lesson, and verify the teaching document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/goprinciples/solid/internal/config"
	"github.com/goprinciples/solid/pkg/commands"
	"github.com/goprinciples/solid/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	// The config flag is resolved before cobra runs so the loaded config can
	// shape the subcommands' flag defaults.
	configPath := resolveConfigPath(os.Args[1:])

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	lggrCfg := logger.Config{Level: level}
	lggr, err := lggrCfg.New()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = lggr.Sync() }()

	root := &cobra.Command{
		Use:           "solid",
		Short:         "The SOLID principles course",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", configPath, "path to a config file")

	cmds := commands.New(lggr, cfg)
	root.AddCommand(
		cmds.List(),
		cmds.Show(),
		cmds.Verify(),
		cmds.Version(),
	)

	return root.Execute()
}

// resolveConfigPath pre-parses only the config flag, ignoring everything
// else; $SOLID_CONFIG is the fallback.
func resolveConfigPath(args []string) string {
	fs := pflag.NewFlagSet("solid", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	path := fs.String("config", os.Getenv("SOLID_CONFIG"), "")
	_ = fs.Parse(args)

	return *path
}
