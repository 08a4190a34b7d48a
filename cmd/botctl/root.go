package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"restaurant-bot/config"
	"restaurant-bot/internal/bootstrap"
	"restaurant-bot/pkg/log"
)

const defaultClientID = "cli"

// app carries the flags and the engine shared by the subcommands.
type app struct {
	cfgFile  string
	verbose  bool
	clientID string
	algo     string

	engine *bootstrap.Engine
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "botctl",
		Short: "Route messages through the restaurant bot without the HTTP server",
		Long: `botctl loads the same catalog, classifier artifacts and session store as the
API and lets you route single messages, hold a conversation, search the
catalog or list the loaded classifiers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.clientID, "client", defaultClientID, "conversation key")

	root.AddCommand(
		newRouteCmd(a),
		newChatCmd(a),
		newCatalogCmd(a),
		newAlgorithmsCmd(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	if a.engine != nil {
		return nil
	}

	_ = godotenv.Load()
	if a.cfgFile != "" {
		viper.SetConfigFile(a.cfgFile)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := "error"
	if a.verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{Level: level, Encoding: "console"})

	a.engine, err = bootstrap.Build(cmd.Context(), cfg, l)
	return err
}
