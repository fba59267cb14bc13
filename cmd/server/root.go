package main

import (
	"github.com/spf13/cobra"

	"github.com/forgo/users/api/internal/config"
)

type rootOptions struct {
	configFile string
	configDir  string
}

func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{Dir: o.configDir, File: o.configFile})
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "users-api",
		Short: "HTTP API for managing users",
		Long: `users-api serves a JSON CRUD API for user records kept in memory.

Configuration comes from config/{default,local,<environment>}.yaml, the file
given with --config, and APP_ prefixed environment variables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file merged after the config directory")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "config", "directory holding default, local and per-environment config files")

	serve := newServeCmd(opts, version)
	root.AddCommand(serve, newConfigCmd(opts))

	// serve is the default action
	root.RunE = serve.RunE

	return root
}
