package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okabe-dev/yt-scribe/internal/config"
)

// channelCmd represents the channel command
var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "YouTube channel operations",
	Long:  `Operations for resolving YouTube channel identifiers.`,
}

// channelResolveCmd resolves an identifier to a canonical channel ID
var channelResolveCmd = &cobra.Command{
	Use:   "resolve [IDENTIFIER]",
	Short: "Resolve an identifier to a canonical channel ID",
	Long: `Resolve a canonical ID, @handle or free-text channel name to the
canonical channel ID. Canonical IDs are returned unchanged without a
network call.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawIdentifier := args[0]

		// Create service with timeout context
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Load configuration
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Create YouTube service
		youtubeService, err := newYouTubeService(ctx, cfg)
		if err != nil {
			return err
		}

		// Resolve channel
		channelID, err := youtubeService.ResolveChannel(ctx, rawIdentifier)
		if err != nil {
			return fmt.Errorf("failed to resolve channel: %w", err)
		}

		fmt.Println(channelID)
		return nil
	},
}

func init() {
	channelCmd.AddCommand(channelResolveCmd)
	rootCmd.AddCommand(channelCmd)
}
