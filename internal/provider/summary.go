// Package provider holds what the summarization and speech adapters share:
// the prompt, the input limit and the errors they report.
package provider

import (
	"errors"
	"unicode/utf8"
)

// ErrEmptyResponse is returned when a model answers without any text.
var ErrEmptyResponse = errors.New("provider returned an empty response")

// SummarySystemPrompt frames the model as a summarizer.
const SummarySystemPrompt = "You are a content summarization expert. " +
	"Summarize the given content meaningfully without omitting important details."

const summaryInstruction = " Summarize the above in 7 to 8 lines."

// SummaryUserPrompt builds the user message: the document text, cut to
// maxChars runes when maxChars > 0, followed by the length instruction.
func SummaryUserPrompt(text string, maxChars int) string {
	return Truncate(text, maxChars) + summaryInstruction
}

// Truncate cuts s to at most maxChars runes. maxChars <= 0 disables the limit.
func Truncate(s string, maxChars int) string {
	if maxChars <= 0 || utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	n := 0
	for i := range s {
		if n == maxChars {
			return s[:i]
		}
		n++
	}
	return s
}
