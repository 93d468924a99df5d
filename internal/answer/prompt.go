// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/tonearm/pkg/types"
)

// systemInstruction pins the model to the compiled facts. The prompt
// never invites knowledge beyond them.
const systemInstruction = "You are a helpful music assistant. Use ONLY the factual context provided below to answer the user. " +
	"If the context does not include evidence for the user's claim, say you don't have evidence. Keep answers concise and friendly."

var infoPromptTmpl = template.Must(template.New("info").Parse(systemInstruction + `

FACTS:
{{.Facts}}

USER QUESTION: {{.Question}}

Answer in 1-3 concise sentences using only the facts.
`))

var producerPromptTmpl = template.Must(template.New("producer").Parse(systemInstruction + `

FACTS:
{{.Facts}}

USER QUESTION: {{.Question}}

{{.Instruction}}

Answer in 1-2 concise, conversational sentences.
`))

const (
	confirmInstruction    = "Confirm the claim politely and mention the producer(s) from the facts."
	denyInstruction       = "Politely explain that the facts do not support the claim and list the producers present in the facts."
	noEvidenceInstruction = "The facts do not include producer information. Respond conversationally saying you don't have evidence and avoid guessing."
)

// factsContext renders the fact record as the plain-text FACTS block.
// Only compiled fields appear; absent fields produce no line at all.
func factsContext(rec types.FactRecord) string {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}

	add("Title", rec.Title)
	add("Artist(s)", rec.Artist)
	switch {
	case rec.ReleaseTitle != "" && rec.ReleaseDate != "":
		add("Release", fmt.Sprintf("%s (%s)", rec.ReleaseTitle, rec.ReleaseDate))
	case rec.ReleaseTitle != "":
		add("Release", rec.ReleaseTitle)
	case rec.ReleaseDate != "":
		add("Release date", rec.ReleaseDate)
	}
	add("Duration", rec.Duration)
	add("Written by", strings.Join(rec.Writers, ", "))
	add("Produced by", strings.Join(rec.Producers, ", "))
	add("Performed by", strings.Join(rec.Performers, ", "))
	add("MBID", rec.RecordingID)

	switch rec.Reason {
	case types.ReasonNoCredits:
		lines = append(lines, "Note: the source lists no credit information for this recording.")
	case types.ReasonFetchFailed:
		lines = append(lines, "Note: full credits could not be retrieved; only search-level facts are available.")
	}

	return strings.Join(lines, "\n")
}

func renderInfoPrompt(rec types.FactRecord, question string) (string, error) {
	var buf bytes.Buffer
	err := infoPromptTmpl.Execute(&buf, struct{ Facts, Question string }{factsContext(rec), question})
	return buf.String(), err
}

func renderProducerPrompt(rec types.FactRecord, question string, v Verdict) (string, error) {
	instruction := noEvidenceInstruction
	switch {
	case v.Known && v.Yes:
		instruction = confirmInstruction
	case v.Known:
		instruction = denyInstruction
	}

	var buf bytes.Buffer
	err := producerPromptTmpl.Execute(&buf, struct{ Facts, Question, Instruction string }{
		factsContext(rec), question, instruction,
	})
	return buf.String(), err
}
