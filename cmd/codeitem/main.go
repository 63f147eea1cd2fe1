// Package main is the entry point for the codeitem CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/codeitem/config"
	"github.com/viant/codeitem/internal/logging"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds persistent flags shared by commands
type options struct {
	configURL string
	envFile   string
	format    string
	kinds     []string
	private   bool
	skipTests bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "codeitem",
		Short:         "Code item inspector",
		Long:          `codeitem lists code items (namespaces, types, members) of Go, Java and C# sources with their comment adjusted positions and metadata.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configURL, "config", "c", "", "YAML config URL")
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file loaded before environment overrides")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: yaml, json")
	flags.StringSliceVarP(&opts.kinds, "kinds", "k", nil, "item kinds to report, i.e. class,method")
	flags.BoolVar(&opts.private, "private", true, "report private members")
	flags.BoolVar(&opts.skipTests, "skip-tests", false, "skip test sources")

	cmd.AddCommand(listCmd(opts))
	cmd.AddCommand(adjustCmd(opts))
	cmd.AddCommand(versionCmd())
	return cmd
}

// loadConfig loads configuration in order: defaults, config file, .env file, environment, command line flags
func loadConfig(ctx context.Context, cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	var err error
	if opts.configURL != "" {
		if cfg, err = config.Load(ctx, afs.New(), opts.configURL); err != nil {
			return nil, err
		}
	}
	if err = config.LoadEnvFile(opts.envFile); err != nil {
		return nil, err
	}
	if err = cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = strings.ToLower(opts.format)
	}
	if flags.Changed("kinds") {
		cfg.Kinds = opts.kinds
	}
	if flags.Changed("private") {
		cfg.IncludePrivate = opts.private
	}
	if flags.Changed("skip-tests") {
		cfg.SkipTests = opts.skipTests
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat).With().Str("app", "codeitem").Logger()
}
