// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell is the interactive read loop: one free-text query per
// line, one answer per query. Nothing a single query does can take the
// loop down; every failure prints a line and prompts again.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/tonearm/internal/chooser"
	"github.com/pdiddy/tonearm/internal/pipeline"
)

const prompt = ">> "

var examples = []string{
	"Tell me about Bohemian Rhapsody by Queen",
	"Shape of You by Ed Sheeran",
	"Is Skeletons by Travis Scott produced by Tame Impala?",
}

// Shell runs the REPL over one reader/writer pair. The same input stream
// feeds both the query lines and the chooser's selections.
type Shell struct {
	Pipeline *pipeline.Pipeline
	In       io.Reader
	Out      io.Writer
}

// Run reads queries until an exit command, end of input, or context
// cancellation. It always returns nil on a clean exit so the process
// status reflects only real failures.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, "tonearm — grounded music Q&A (MusicBrainz + local model)")
	fmt.Fprintln(s.Out, "Ask about a song, or type 'help'. 'exit' quits.")
	fmt.Fprintln(s.Out)

	scanner := bufio.NewScanner(s.In)

	// The chooser shares the scanner so a pending disambiguation menu
	// consumes the next lines instead of racing the query prompt.
	s.Pipeline.Chooser = chooser.NewInteractiveScanner(scanner, s.Out)

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(s.Out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.Out, "\nGoodbye!")
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "exit", "quit":
			fmt.Fprintln(s.Out, "Goodbye!")
			return nil
		case "help", "?":
			s.printHelp()
			continue
		case "examples":
			s.printExamples()
			continue
		}

		res, err := s.Pipeline.Run(ctx, line)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			fmt.Fprintln(s.Out, pipeline.UserMessage(err))
			fmt.Fprintln(s.Out)
			continue
		}

		fmt.Fprintln(s.Out)
		fmt.Fprintln(s.Out, res.Answer)
		fmt.Fprintln(s.Out)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.Out, "Ask about a song or its credits in plain language. Examples:")
	for _, ex := range examples {
		fmt.Fprintln(s.Out, "  -", ex)
	}
	fmt.Fprintln(s.Out, "Commands: help, examples, exit, quit")
}

func (s *Shell) printExamples() {
	fmt.Fprintln(s.Out, "Examples:")
	for _, ex := range examples {
		fmt.Fprintln(s.Out, "  -", ex)
	}
}
