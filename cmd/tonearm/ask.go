// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tonearm/internal/answer"
	"github.com/pdiddy/tonearm/internal/chooser"
	"github.com/pdiddy/tonearm/internal/llm"
	"github.com/pdiddy/tonearm/internal/musicbrainz"
	"github.com/pdiddy/tonearm/internal/pipeline"
	"github.com/pdiddy/tonearm/pkg/types"
)

var askFormat string

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a single question and exit",
	Long: `Answer one question non-interactively. The top-ranked recording is
used without prompting, which makes this form suitable for scripts:

  tonearm ask Tell me about Shape of You by Ed Sheeran
  tonearm ask --format json Was Random Access Memories produced by Nile Rodgers`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askFormat, "format", "text", "output format: text, json or yaml")
}

// askOutput is the structured form emitted for --format json/yaml.
type askOutput struct {
	Facts  types.FactRecord `json:"facts" yaml:"facts"`
	Answer string           `json:"answer" yaml:"answer"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Sync() //nolint:errcheck

	cfg := loadConfig()

	model := llm.NewOllamaClient(cfg.LLM, log)
	p := &pipeline.Pipeline{
		Source:  musicbrainz.NewClient(cfg.MusicBrainz, log),
		Chooser: chooser.TopRanked{},
		Gen:     &answer.Generator{LLM: model, Log: log},
		Log:     log,
	}

	res, err := p.Run(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("%s", pipeline.UserMessage(err))
	}

	out := cmd.OutOrStdout()
	switch askFormat {
	case "text":
		fmt.Fprintln(out, res.Answer)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(askOutput{Facts: res.Record, Answer: res.Answer}); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	case "yaml":
		data, err := yaml.Marshal(askOutput{Facts: res.Record, Answer: res.Answer})
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", askFormat)
	}
	return nil
}
