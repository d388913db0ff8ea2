package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okabe-dev/yt-scribe/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
	Long:  `Manage configuration settings for yt-scribe.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init [API_KEY]",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file with YouTube Data API settings.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var apiKey string
		if len(args) > 0 {
			apiKey = args[0]
		}

		if err := config.InitConfig(apiKey); err != nil {
			return err
		}

		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Printf("Created configuration file: %s\n", configPath)
		fmt.Println("Please edit the api_key in this file to match your YouTube Data API key.")

		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration file path and settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Printf("Configuration file: %s\n\n", configPath)

		// Load and display current config
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		fmt.Printf("language: %s\n", cfg.Language)
		fmt.Printf("max_videos: %d\n", cfg.MaxVideos)
		fmt.Printf("pacing_ms: %d\n", cfg.PacingMs)
		fmt.Printf("transcript_timeout_s: %d\n", cfg.TranscriptTimeoutSec)
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		if cfg.APIKey != "" {
			fmt.Println("api_key: (set)")
		} else {
			fmt.Println("api_key: (not set)")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
