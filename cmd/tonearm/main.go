// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Command tonearm answers natural-language questions about songs using
// MusicBrainz metadata and a locally hosted language model.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/tonearm/pkg/types"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tonearm",
	Short: "Grounded music Q&A from the command line",
	Long: `tonearm answers questions about songs — writers, producers, release
dates — using MusicBrainz as the source of truth. A local language model
phrases the answers; when it is unreachable, tonearm falls back to a
plain rendering of the same facts.

Run with no arguments to start an interactive chat session.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd, args)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tonearm.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	// A .env file can carry TONEARM_* overrides during development.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tonearm")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.config/tonearm")
		}
	}

	viper.SetEnvPrefix("TONEARM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the pipeline configuration from viper, filling any
// unset values with defaults.
func loadConfig() types.PipelineConfig {
	var cfg types.PipelineConfig
	cfg.MusicBrainz.BaseURL = viper.GetString("musicbrainz.base_url")
	cfg.MusicBrainz.UserAgent = viper.GetString("musicbrainz.user_agent")
	cfg.MusicBrainz.Timeout = viper.GetDuration("musicbrainz.timeout")
	cfg.MusicBrainz.SearchLimit = viper.GetInt("musicbrainz.search_limit")
	cfg.MusicBrainz.RequestsPerSecond = viper.GetFloat64("musicbrainz.requests_per_second")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	cfg.Defaults()
	return cfg
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
