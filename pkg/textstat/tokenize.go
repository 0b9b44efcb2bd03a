package textstat

import (
	"strings"
	"unicode"
)

// sentenceTerminators end a sentence. Sequences like "?!" or "..." are
// treated as a single boundary.
func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Sentences splits text into sentences on terminal punctuation.
// Empty segments (consecutive terminators, trailing whitespace) are dropped.
func Sentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		current.Reset()
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
	}

	for _, r := range text {
		if isSentenceTerminator(r) {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return sentences
}

// Tokens splits a sentence into whitespace-delimited tokens with
// surrounding punctuation trimmed. Tokens that are pure punctuation
// disappear entirely, internal apostrophes and hyphens survive.
func Tokens(sentence string) []string {
	fields := strings.FieldsFunc(sentence, unicode.IsSpace)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
