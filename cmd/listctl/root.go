package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"arenalist/infra/logging"
)

// levelFlag is a pflag.Value for slog levels.
type levelFlag struct {
	level slog.Level
}

var _ pflag.Value = (*levelFlag)(nil)

func (f *levelFlag) String() string { return strings.ToLower(f.level.String()) }

func (f *levelFlag) Set(s string) error {
	if err := f.level.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("log level %q: %w", s, err)
	}
	return nil
}

func (f *levelFlag) Type() string { return "level" }

// NewRootCommand builds the listctl command tree.
func NewRootCommand() *cobra.Command {
	level := &levelFlag{level: slog.LevelWarn}

	root := &cobra.Command{
		Use:           "listctl",
		Short:         "Drive arena-backed linked lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level.level})
			logging.SetLogger(slog.New(h).With("component", "listctl"))
		},
	}
	root.PersistentFlags().Var(level, "log-level", "log level (debug, info, warn, error)")

	root.AddCommand(
		NewDemoCommand(),
		NewFillCommand(),
		NewSnapshotCommand(),
	)
	return root
}
