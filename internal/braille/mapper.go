package braille

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// charClass tags an input character for dispatch in mapChars.
type charClass uint8

const (
	classOther charClass = iota
	classLetter
	classDigit
	classPunct
)

// runState is the character mapper state, scoped to one token.
// Only the transition into stateDigitRun emits anything (the number indicator).
type runState uint8

const (
	stateStart runState = iota
	stateLetterOrPunct
	stateDigitRun
)

func (s runState) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateLetterOrPunct:
		return "letter_or_punct"
	case stateDigitRun:
		return "digit_run"
	default:
		return "unknown"
	}
}

// classify assigns a class. Any Unicode letter or decimal digit takes part in
// capital and number indication even when the tables have no cell for it.
func (t *Transcoder) classify(r rune) charClass {
	switch {
	case unicode.IsLetter(r):
		return classLetter
	case unicode.IsDigit(r):
		return classDigit
	}
	if _, ok := t.punctuation[r]; ok {
		return classPunct
	}
	return classOther
}

// next returns the state after consuming a character of class c and whether
// the number indicator must be emitted first.
func (s runState) next(c charClass) (runState, bool) {
	if c == classDigit {
		return stateDigitRun, s != stateDigitRun
	}
	return stateLetterOrPunct, false
}

// mapChars converts a token character by character. Bytes of unmapped
// characters are copied unchanged, including invalid UTF-8.
func (t *Transcoder) mapChars(tok string) string {
	var b strings.Builder
	b.Grow(len(tok) * 4)

	state := stateStart
	for i := 0; i < len(tok); {
		r, size := utf8.DecodeRuneInString(tok[i:])
		class := t.classify(r)

		var indicator bool
		state, indicator = state.next(class)

		switch class {
		case classLetter:
			if unicode.IsUpper(r) {
				b.WriteString(CapitalIndicator)
			}
			if lower := unicode.ToLower(r); lower >= 'a' && lower <= 'z' {
				b.WriteRune(letterGlyph(lower))
			} else {
				b.WriteString(tok[i : i+size])
			}
		case classDigit:
			if indicator {
				b.WriteString(NumberIndicator)
			}
			if r >= '0' && r <= '9' {
				b.WriteRune(digitGlyph(r))
			} else {
				b.WriteString(tok[i : i+size])
			}
		case classPunct:
			b.WriteString(t.punctuation[r])
		case classOther:
			b.WriteString(tok[i : i+size])
		}
		i += size
	}
	return b.String()
}
