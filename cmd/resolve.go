package cmd

import (
	"context"
	"fmt"
	"strings"

	"catalog-sync/core/config"
	"catalog-sync/core/logger"
	"catalog-sync/provider/twitch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resolveCmd is a debugging aid: it runs the livestream-id fallback chain
// for one title and prints the outcome, without touching the database.
var resolveCmd = &cobra.Command{
	Use:   "resolve <title>",
	Short: "Resolve a game title to its livestream-provider id",
	Long: `Runs the name-matching fallback chain against the livestream provider
and prints the resolved game id, if any.

Example:
  catalog-sync resolve "The Witcher 3"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	RootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	title := strings.Join(args, " ")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Providers.Twitch.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Console logging reads better for an interactive command.
	logg, err := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	client := twitch.NewClient(cfg.Providers.Twitch, logg)
	resolver := twitch.NewResolver(client, logg)

	id, err := resolver.ResolveID(ctx, title)
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}
	if id == "" {
		logg.Warn("Title did not resolve", zap.String("title", title))
		return nil
	}

	logg.Info("Title resolved", zap.String("title", title), zap.String("game_id", id))
	return nil
}
