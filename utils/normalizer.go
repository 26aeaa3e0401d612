package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var spaceRuns = regexp.MustCompile(`[ \t]+`)

// Normalize canonicalizes mixed Arabic/Latin invoice text so the PO
// patterns only ever see one form. Pipeline order (later steps assume
// the earlier canonical forms):
//  1. NFKC - folds width and compatibility variants
//  2. strip combining marks (Mn) - Arabic tashkeel, Latin accents
//  3. NBSP to plain space
//  4. Arabic-Indic and Extended Arabic-Indic digits to ASCII 0-9
//  5. drop bidi control marks (LRM, RLM, LRE, RLE, PDF, LRO, RLO)
//  6. fold typographic punctuation, open brackets to spaces
//  7. collapse space/tab runs to a single space, trim edges
//
// Total and idempotent; empty input yields empty output. A fresh
// transformer chain is built per call so concurrent extraction needs no
// locking.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	chain := transform.Chain(norm.NFKC, runes.Remove(runes.In(unicode.Mn)))
	s, _, err := transform.String(chain, text)
	if err != nil {
		// Invalid UTF-8 only; fall back to the raw text
		s = text
	}

	s = strings.Map(foldRune, s)
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// foldRune implements steps 3-6 of the pipeline in a single rune pass;
// the rune classes involved are disjoint so one pass is equivalent to
// applying the steps in order.
func foldRune(r rune) rune {
	switch {
	case r >= '٠' && r <= '٩': // Arabic-Indic digits
		return '0' + (r - '٠')
	case r >= '۰' && r <= '۹': // Extended Arabic-Indic digits
		return '0' + (r - '۰')
	}

	switch r {
	case ' ': // no-break space
		return ' '
	case '‎', '‏', '‪', '‫', '‬', '‭', '‮':
		return -1 // bidi controls carry no glyph
	case '：': // fullwidth colon
		return ':'
	case '–', '—': // en and em dash
		return '-'
	case 'ـ': // tatweel
		return ' '
	case '(', ')', '[', ']':
		// keep bracketed numbers visible to unbracketed patterns
		return ' '
	}

	return r
}
