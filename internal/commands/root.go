package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moasq/affixgen/internal/config"
	"github.com/moasq/affixgen/internal/logging"
	"github.com/moasq/affixgen/internal/service"
)

// Version is set at build time.
var Version = "0.1.0"

// rootOptions holds the persistent flags and the state built from them.
type rootOptions struct {
	configPath string
	verbose    bool
	profile    string
	strategy   string

	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the affixgen command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "affixgen",
		Short:   "Fusion affix generator for locale word lists",
		Long:    "affixgen derives fusion name prefixes and suffixes from a locale's pokemon.ts word list and writes pokemon-fusion-affixes.ts.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if p := cfg.Path(); p != "" {
				logger.Debug("loaded config", zap.String("path", p))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./affixgen.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "write debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&opts.profile, "profile", "", "alphabet profile to use (default from config, else latin)")
	rootCmd.PersistentFlags().StringVar(&opts.strategy, "strategy", "", "derivation strategy: auto, alphabetic or universal")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newSwapCmd(opts))
	rootCmd.AddCommand(newMCPCmd(opts))

	return rootCmd
}

// newService builds a Service from the loaded config and persistent flags.
func (o *rootOptions) newService() (*service.Service, error) {
	return service.NewService(o.cfg, service.ServiceOpts{
		Profile:  o.profile,
		Strategy: o.strategy,
		Logger:   o.logger,
	})
}
