// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query parses free-text music questions into a structured intent.
// Parsing is pure and best-effort: it fails only when no title-like token
// can be isolated at all, so a partial intent never blocks the pipeline.
package query

import (
	"errors"
	"regexp"
	"strings"

	"github.com/pdiddy/tonearm/pkg/types"
)

// ErrAmbiguous is returned when the text contains no usable title, e.g.
// an empty line or bare punctuation. The caller recovers by asking the
// user to rephrase.
var ErrAmbiguous = errors.New("could not isolate a song title")

// producerCheckPatterns match yes/no producer-attribution questions. The
// title group may itself contain " by <artist>", split off afterwards.
var producerCheckPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(?:is|was)\s+['"]?(?P<title>.+?)['"]?\s+produced\s+by\s+['"]?(?P<person>.+?)['"]?\s*$`),
	regexp.MustCompile(`(?i)^\s*did\s+['"]?(?P<person>.+?)['"]?\s+produce\s+['"]?(?P<title>.+?)['"]?\s*$`),
	regexp.MustCompile(`(?i)^\s*is\s+['"]?(?P<person>.+?)['"]?\s+(?:the\s+)?producer\s+of\s+['"]?(?P<title>.+?)['"]?\s*$`),
}

// infoPatterns match "tell me about <title> by <artist>" style questions,
// most specific first. The last is the generic "<title> by <artist>" split.
var infoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(?:what\s+can\s+you\s+)?tell\s+me\s+about\s+['"]?(?P<title>.+?)['"]?\s+by\s+(?P<artist>.+?)\s*$`),
	regexp.MustCompile(`(?i)^\s*about\s+['"]?(?P<title>.+?)['"]?\s+by\s+(?P<artist>.+?)\s*$`),
	regexp.MustCompile(`(?i)^\s*['"]?(?P<title>.+?)['"]?\s+by\s+(?P<artist>.+?)\s*$`),
}

var leadingPhrases = []string{
	"what can you tell me about",
	"tell me about",
	"about",
}

// Parse extracts a QueryIntent from one line of user input. It returns
// ErrAmbiguous only when nothing title-like survives; otherwise the intent
// is best-effort and the artist may be absent.
func Parse(text string) (types.QueryIntent, error) {
	raw := strings.Join(strings.Fields(text), " ")
	intent := types.QueryIntent{RawText: raw, Mode: types.ModeInfo}

	trimmed := strings.TrimSpace(strings.TrimSuffix(raw, "?"))
	if trimmed == "" {
		return types.QueryIntent{}, ErrAmbiguous
	}

	if title, person, ok := matchProducerCheck(trimmed); ok {
		intent.Mode = types.ModeProducerCheck
		intent.CheckedProducer = person
		intent.Title, intent.Artist = splitTitleArtist(title)
		if intent.Title == "" {
			return types.QueryIntent{}, ErrAmbiguous
		}
		return intent, nil
	}

	for _, p := range infoPatterns {
		if m := p.FindStringSubmatch(trimmed); m != nil {
			intent.Title = clean(m[p.SubexpIndex("title")])
			intent.Artist = clean(m[p.SubexpIndex("artist")])
			if intent.Title == "" {
				return types.QueryIntent{}, ErrAmbiguous
			}
			return intent, nil
		}
	}

	// No "by" separator: the whole text is the title, minus any leading
	// conversational phrase.
	title := trimmed
	lower := strings.ToLower(title)
	for _, phrase := range leadingPhrases {
		if strings.HasPrefix(lower, phrase+" ") {
			title = title[len(phrase)+1:]
			break
		}
	}
	intent.Title = clean(title)
	if intent.Title == "" {
		return types.QueryIntent{}, ErrAmbiguous
	}
	return intent, nil
}

func matchProducerCheck(text string) (title, person string, ok bool) {
	for _, p := range producerCheckPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return clean(m[p.SubexpIndex("title")]), clean(m[p.SubexpIndex("person")]), true
		}
	}
	return "", "", false
}

var bySeparator = regexp.MustCompile(`(?i)\s+by\s+`)

// splitTitleArtist splits "<title> by <artist>" on the first " by ",
// returning the whole string as the title when no separator is present.
func splitTitleArtist(s string) (title, artist string) {
	parts := bySeparator.Split(s, 2)
	if len(parts) == 2 {
		return clean(parts[0]), clean(parts[1])
	}
	return clean(s), ""
}

// clean strips surrounding whitespace and quote characters.
func clean(s string) string {
	return strings.Trim(strings.TrimSpace(s), `'"`)
}
