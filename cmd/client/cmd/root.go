package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"vokabular/cmd/client/cmd/types"
	"vokabular/internal/app/client"
	"vokabular/internal/app/client/config"
	"vokabular/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "vokabular",
	Short: "Vokabular - flashcard vocabulary trainer",
	Long: `Vokabular is the command-line client of the vocabulary trainer.

Translate foreign phrases into German, save them as flashcards and
practice them in short sessions. Practice works offline against the
local cache when the server is unreachable.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to init application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server address (host:port)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}
