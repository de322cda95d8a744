package main

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/az-ai-labs/dateguess/internal/config"
)

// app carries state shared by subcommands once flags are parsed.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
	bindErr error // first flag that could not be bound into viper
}

func newRootCmd() (*cobra.Command, error) {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:          "dateguess",
		Short:        "Infer date format templates from sample strings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.String(config.KeyMode, "dev", `"dev" or "prod"`)
	flags.String(config.KeyLogLevel, "info", "debug, info, warn or error")
	a.bindFlags(root, true, config.KeyMode, config.KeyLogLevel)

	root.AddCommand(
		newClassifyCmd(a),
		newServeCmd(a),
		newLocalesCmd(),
	)
	if a.bindErr != nil {
		return nil, a.bindErr
	}
	return root, nil
}

// bindFlags binds cmd's flags named by keys to the same viper keys.
func (a *app) bindFlags(cmd *cobra.Command, persistent bool, keys ...string) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	for _, key := range keys {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil && a.bindErr == nil {
			a.bindErr = errors.Wrapf(err, "failed to bind flag %s", key)
		}
	}
}

func (a *app) load(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(a.logger)
	a.logger.Debug("config loaded", "mode", cfg.Mode, "locale", cfg.Locale, "file", a.cfgFile)
	return nil
}
