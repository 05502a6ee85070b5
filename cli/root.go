// Package cli wires the grammarlens command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"japanesegrammar/config"
	"japanesegrammar/logger"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// rootOptions holds global flags and the state built from them.
type rootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
	NoColor      bool

	cfg *config.Config
}

// NewRootCommand creates the root command with its global flags and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:     "grammarlens",
		Short:   "Find Japanese grammar patterns and verb conjugations in text",
		Long:    "grammarlens tokenizes Japanese sentences, matches them against a set of grammar\nrules and labels every verb with the conjugations its surface form realises.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: environment only)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", outputText, "output format (text, json)")
	pf.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newAnalyzeCmd(opts),
		newConjugateCmd(opts),
		newDetectCmd(opts),
		newClassifyCmd(opts),
		newRulesCmd(opts),
	)
	return cmd
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	if o.OutputFormat != outputText && o.OutputFormat != outputJSON {
		return fmt.Errorf("unknown output format %q", o.OutputFormat)
	}
	var err error
	if o.ConfigPath != "" {
		o.cfg, err = config.Load(o.ConfigPath)
	} else {
		o.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		o.cfg.Log.Level = o.LogLevel
	}
	if err := logger.Init(o.cfg.Log.Level, o.cfg.Log.Console); err != nil {
		return err
	}
	color.Enable = !o.NoColor
	return nil
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		color.Fprintf(os.Stderr, "<red>error:</> %v\n", err)
		return 1
	}
	return 0
}
