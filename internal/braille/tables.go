package braille

import (
	"fmt"
	"strings"
)

// Indicator glyphs.
const (
	CapitalIndicator = "⠠"
	NumberIndicator  = "⠼"
)

// Braille Patterns block bounds.
const (
	BlockStart rune = 0x2800
	BlockEnd   rune = 0x28FF
)

// InBlock reports whether r is a Braille cell.
func InBlock(r rune) bool {
	return r >= BlockStart && r <= BlockEnd
}

// Scheme selects the glyph set used for grouping punctuation.
type Scheme string

const (
	// SchemeCompat emits ( and ) as ⠷ and ⠾. Those are also the glyphs of the
	// "of" and "with" contractions, so the output is ambiguous to a reader.
	SchemeCompat Scheme = "compat"

	// SchemeUEB emits ( and ) as the two-cell grouping signs ⠐⠣ and ⠐⠜.
	SchemeUEB Scheme = "ueb"
)

// ParseScheme converts a config or request value into a Scheme.
// An empty string selects SchemeCompat.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case "", SchemeCompat:
		return SchemeCompat, nil
	case SchemeUEB:
		return SchemeUEB, nil
	default:
		return "", fmt.Errorf("braille: unknown scheme %q", s)
	}
}

// letters maps a..z by offset from 'a'.
var letters = [26]rune{
	'⠁', '⠃', '⠉', '⠙', '⠑', '⠋', '⠛', '⠓', '⠊', '⠚',
	'⠅', '⠇', '⠍', '⠝', '⠕', '⠏', '⠟', '⠗', '⠎', '⠞',
	'⠥', '⠧', '⠺', '⠭', '⠽', '⠵',
}

// contractions holds the whole-word table. Keys are lower-case.
var contractions = map[string]string{
	"and":  "⠯",
	"for":  "⠿",
	"of":   "⠷",
	"the":  "⠮",
	"with": "⠾",
}

var compatPunctuation = map[rune]string{
	',':  "⠠⠂",
	'.':  "⠲",
	'!':  "⠖",
	'?':  "⠦",
	';':  "⠆",
	':':  "⠒",
	'-':  "⠤",
	'\'': "⠄",
	'"':  "⠐⠦",
	'(':  "⠷",
	')':  "⠾",
}

var uebPunctuation = func() map[rune]string {
	m := make(map[rune]string, len(compatPunctuation))
	for k, v := range compatPunctuation {
		m[k] = v
	}
	m['('] = "⠐⠣"
	m[')'] = "⠐⠜"
	return m
}()

// letterGlyph returns the cell for a lower-case ASCII letter.
func letterGlyph(lower rune) rune {
	return letters[lower-'a']
}

// digitGlyph returns the cell for an ASCII digit: 1..9 share a..i, 0 shares j.
func digitGlyph(d rune) rune {
	if d == '0' {
		return letters['j'-'a']
	}
	return letters[d-'1']
}
