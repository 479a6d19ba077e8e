// Package sanitize derives filesystem-safe base names from characters. The
// mapping is total: every rune maps to a non-empty token containing no path
// separators, so output filenames are always valid regardless of input.
package sanitize

import (
	"fmt"
	"unicode"
)

// specialNames maps ASCII punctuation and space to human-readable tokens.
// Constructed once; lookup only.
var specialNames = map[rune]string{
	' ':  "space",
	'!':  "exclamation",
	'"':  "quote",
	'#':  "hash",
	'$':  "dollar",
	'%':  "percent",
	'&':  "ampersand",
	'\'': "apostrophe",
	'(':  "lparen",
	')':  "rparen",
	'*':  "asterisk",
	'+':  "plus",
	',':  "comma",
	'-':  "minus",
	'.':  "period",
	'/':  "slash",
	':':  "colon",
	';':  "semicolon",
	'<':  "less",
	'=':  "equals",
	'>':  "greater",
	'?':  "question",
	'@':  "at",
	'[':  "lbracket",
	'\\': "backslash",
	']':  "rbracket",
	'^':  "caret",
	'_':  "underscore",
	'`':  "backtick",
	'{':  "lbrace",
	'|':  "pipe",
	'}':  "rbrace",
	'~':  "tilde",
}

// Filename converts a character to a safe file base name, without extension.
// Punctuation maps to a readable token, letters and digits map to themselves,
// and anything else maps to "U" followed by the uppercase hex code point
// (at least four digits).
func Filename(ch rune) string {
	if name, ok := specialNames[ch]; ok {
		return name
	}
	if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
		return string(ch)
	}
	return fmt.Sprintf("U%04X", ch)
}
