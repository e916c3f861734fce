// Package braille converts plain text into Unicode Braille cells using a
// hybrid Grade-1/Grade-2 scheme: per-letter cells, capital and number
// indicators, fixed punctuation cells and a five-word contraction table.
//
// All functions are pure. The tables are read-only after package
// initialization, so a Transcoder may be shared by any number of goroutines.
package braille

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Transcoder converts text to Braille with a fixed punctuation scheme.
type Transcoder struct {
	scheme      Scheme
	punctuation map[rune]string
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithScheme selects the punctuation scheme. Unknown values fall back to SchemeCompat.
func WithScheme(s Scheme) Option {
	return func(t *Transcoder) {
		t.scheme = s
	}
}

// New creates a Transcoder. The zero-option Transcoder reproduces the
// observed compat output bit for bit.
func New(opts ...Option) *Transcoder {
	t := &Transcoder{scheme: SchemeCompat}
	for _, opt := range opts {
		opt(t)
	}

	switch t.scheme {
	case SchemeUEB:
		t.punctuation = uebPunctuation
	default:
		t.scheme = SchemeCompat
		t.punctuation = compatPunctuation
	}
	return t
}

// Scheme returns the punctuation scheme in use.
func (t *Transcoder) Scheme() Scheme { return t.scheme }

var std = New()

// Transcode converts text with the default compat scheme. See Transcoder.Transcode.
func Transcode(text string) string { return std.Transcode(text) }

// TranscodeLayout converts text with the default compat scheme while keeping
// whitespace. See Transcoder.TranscodeLayout.
func TranscodeLayout(text string) string { return std.TranscodeLayout(text) }

// Transcode splits text on runs of whitespace, converts every token and joins
// the results with a single space. Original spacing is not preserved:
// "a  b" and "a b" produce the same output. Empty input yields "".
func (t *Transcoder) Transcode(text string) string {
	tokens := split(text)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = t.token(tok)
	}
	return assemble(out)
}

// TranscodeLayout converts every token exactly as Transcode does but copies
// each whitespace span through verbatim, so line breaks and indentation survive.
func (t *Transcoder) TranscodeLayout(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 3)

	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				b.WriteString(t.token(text[start:i]))
				start = -1
			}
			b.WriteRune(r)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		b.WriteString(t.token(text[start:]))
	}
	return b.String()
}

// split is the word splitter. It never returns empty tokens.
func split(text string) []string {
	return strings.Fields(text)
}

// assemble joins converted tokens with one separator.
func assemble(tokens []string) string {
	return strings.Join(tokens, " ")
}

// token converts a single whitespace-free token.
func (t *Transcoder) token(tok string) string {
	if glyph, ok := matchContraction(tok); ok {
		return glyph
	}
	return t.mapChars(tok)
}

// matchContraction looks the whole lower-cased token up in the contraction
// table. Attached punctuation defeats the match.
func matchContraction(tok string) (string, bool) {
	glyph, ok := contractions[strings.ToLower(tok)]
	if !ok {
		return "", false
	}
	first, _ := utf8.DecodeRuneInString(tok)
	if unicode.IsUpper(first) {
		return CapitalIndicator + glyph, true
	}
	return glyph, true
}
