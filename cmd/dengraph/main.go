// Command dengraph loads a weighted graph and runs incremental
// density-based clustering over it, reporting the resulting clusters and
// noise set.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := newRootCommand(cfg)
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func newRootCommand(cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "dengraph",
		Short: "Incremental density-based graph clustering",
	}
	root.AddCommand(newBuildCommand(cfg))
	root.AddCommand(newInsertCommand(cfg))
	root.AddCommand(newDeleteCommand(cfg))
	root.AddCommand(newSuggestEpsCommand())
	root.AddCommand(newReachCommand(cfg))
	root.AddCommand(newComponentsCommand(cfg))

	return root
}
