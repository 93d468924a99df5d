// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chooser resolves a ranked candidate list to exactly one
// recording. With a single candidate it selects silently; with two or
// three it presents a 1-indexed menu and blocks on the user. This is the
// only interactive point in the pipeline, which keeps every other stage a
// pure function over its inputs.
package chooser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/tonearm/pkg/types"
)

// ErrAborted means the user cancelled the selection (or the input ended).
// No fetch or model call happens after an abort.
var ErrAborted = errors.New("selection aborted")

// Chooser picks one candidate ID from a non-empty ranked list.
type Chooser interface {
	Choose(candidates []types.Candidate) (string, error)
}

// Interactive prompts on Out and reads selections from In. Only an
// integer inside the menu range is accepted; anything else re-prompts.
// "c", "cancel", and "q" abort.
type Interactive struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

// NewInteractiveScanner builds an Interactive chooser over an existing
// scanner, so a surrounding read loop and the menu consume the same
// input stream without double-buffering.
func NewInteractiveScanner(sc *bufio.Scanner, out io.Writer) *Interactive {
	return &Interactive{Out: out, scanner: sc}
}

// Choose returns the selected candidate's ID. A single candidate is
// auto-selected without prompting.
func (c *Interactive) Choose(candidates []types.Candidate) (string, error) {
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("choose called with no candidates")
	case 1:
		return candidates[0].ID, nil
	}

	fmt.Fprintln(c.Out, "\nSeveral recordings match — which one do you mean?")
	for i, cand := range candidates {
		fmt.Fprintln(c.Out, MenuLine(i+1, cand))
	}
	fmt.Fprintf(c.Out, "Enter 1-%d to choose, or c to cancel.\n", len(candidates))

	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.In)
	}

	for {
		fmt.Fprint(c.Out, "Choice: ")
		if !c.scanner.Scan() {
			// End of input counts as an abort, not a default pick.
			return "", ErrAborted
		}
		line := strings.ToLower(strings.TrimSpace(c.scanner.Text()))

		switch line {
		case "c", "cancel", "q":
			return "", ErrAborted
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(candidates) {
			fmt.Fprintf(c.Out, "Invalid choice. Enter a number between 1 and %d, or c to cancel.\n", len(candidates))
			continue
		}
		return candidates[n-1].ID, nil
	}
}

// TopRanked is the non-interactive chooser used by one-shot commands: it
// always takes the best-ranked candidate.
type TopRanked struct{}

// Choose returns the first candidate's ID.
func (TopRanked) Choose(candidates []types.Candidate) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("choose called with no candidates")
	}
	return candidates[0].ID, nil
}

// MenuLine formats one 1-indexed disambiguation menu entry.
func MenuLine(idx int, c types.Candidate) string {
	line := fmt.Sprintf("%d. %q — %s", idx, c.Title, orUnknown(c.Artist))
	if c.ReleaseTitle != "" {
		line += " | Release: " + c.ReleaseTitle
		if c.ReleaseDate != "" {
			line += " (" + c.ReleaseDate + ")"
		}
	}
	return line + " | MBID: " + c.ID
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
