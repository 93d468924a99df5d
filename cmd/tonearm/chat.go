// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/tonearm/internal/answer"
	"github.com/pdiddy/tonearm/internal/llm"
	"github.com/pdiddy/tonearm/internal/musicbrainz"
	"github.com/pdiddy/tonearm/internal/pipeline"
	"github.com/pdiddy/tonearm/internal/shell"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question-and-answer session",
	Long: `Start a read-eval-print loop on stdin. Each line is treated as a
question about a song; ambiguous matches prompt for a choice among the
top candidates. Type "help" inside the session for commands.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, _ []string) error {
	log := newLogger()
	defer log.Sync() //nolint:errcheck

	cfg := loadConfig()

	model := llm.NewOllamaClient(cfg.LLM, log)
	p := &pipeline.Pipeline{
		Source: musicbrainz.NewClient(cfg.MusicBrainz, log),
		Gen:    &answer.Generator{LLM: model, Log: log},
		Log:    log,
	}

	s := &shell.Shell{
		Pipeline: p,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
	}
	return s.Run(cmd.Context())
}
