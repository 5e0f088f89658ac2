package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/internal/config"
	"github.com/katalvlaran/aoc2024/internal/ctxlog"
)

// app is the state shared by every command of one invocation.
type app struct {
	stdout, stderr io.Writer
	cfg            *config.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, cfg: config.Default()}
	var (
		cfgPath string
		flagCfg = *config.Default()
	)

	root := &cobra.Command{
		Use:           "aoc2024",
		Short:         "Advent of Code 2024 solutions, days 1 to 8",
		Args:          rootArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, cfgPath, &flagCfg)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return usageError(cmd, errors.New("missing command"))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(usageError)
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "YAML config file")
	pf.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "log level: debug, info, warn or error")
	pf.StringVar(&flagCfg.LogFormat, "log-format", flagCfg.LogFormat, "log format: text or json")
	pf.BoolVar(&flagCfg.Human, "human", false, "print answers with thousands separators")

	for _, n := range slices.Sorted(maps.Keys(days)) {
		root.AddCommand(days[n].command(a))
	}
	root.AddCommand(listCmd(a))
	return root
}

// setup merges defaults, the config file and explicitly set flags, then
// puts a logger for the result on the command's context.
func (a *app) setup(cmd *cobra.Command, path string, over *config.Config) error {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = over.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = over.LogFormat
	}
	if flags.Changed("human") {
		cfg.Human = over.Human
	}
	if err := cfg.Validate(); err != nil {
		return usageError(cmd, err)
	}
	a.cfg = cfg

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, a.stderr)
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	return nil
}

func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError(cmd, fmt.Errorf("unknown command %q", args[0]))
	}
	return nil
}

// exactArgs is cobra.ExactArgs with usage on stderr and exit status 2.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return &exitError{code: 2, err: err}
}
