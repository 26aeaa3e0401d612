package utils

import (
	"regexp"

	"github.com/3madMostafa/test-json-ocr/dto"
)

// patternRule pairs a provenance name with the pattern that captures a
// candidate PO number in its first group.
type patternRule struct {
	name string
	rx   *regexp.Regexp
}

// poRules is evaluated top to bottom, first match wins. Explicit labels
// ("PO NUM", the Arabic meals phrase) outrank generic numeric heuristics
// so a bare quantity elsewhere in the text cannot pre-empt a labelled PO
// number. Every capture is bounded to 4-6 digits: shorter numbers are
// usually quantities or line numbers, longer ones IDs or UUID fragments.
//
// Note: RE2's \b is ASCII-only, so the Arabic-anchored rules avoid it
// around Arabic letters.
var poRules = []patternRule{
	// "food meals", optionally followed by the Dr. abbreviation
	{"arabic-meals", regexp.MustCompile(`وجبات\s*غذائي[هة]\s+(?:د\.\s*)?(\d{4,6})`)},
	{"po-num-colon", regexp.MustCompile(`(?i)\bpo\s*num\s*:?\s*(\d{4,6})\b`)},
	{"po-forward-slash", regexp.MustCompile(`(?i)\bpo\s*/\s*(\d{4,6})\b`)},
	// six digits glued to a d/m/yyyy date, e.g. 17418015/8/2025
	{"num-concat-date", regexp.MustCompile(`\b(\d{6})\d{1,2}/\d{1,2}/\d{4}\b`)},
	{"num-date", regexp.MustCompile(`\b(\d{4,6})\s+\d{1,2}/\d{1,2}/\d{4}\b`)},
	{"standalone-6digit", regexp.MustCompile(`\b(\d{6})\s*$`)},
	{"po-slash", regexp.MustCompile(`(?i)\bPO\s*/\s*(\d{4,6})\b`)},
	{"taxpayer-name-num", regexp.MustCompile(`(?i)taxpayer\s*name\s*[:#]?\s*(\d{4,6})`)},
	{"parentheses-end", regexp.MustCompile(`\(.*?(\d{4,6})\s*\)$`)},
	{"parentheses", regexp.MustCompile(`\([^)]*?(\d{4,6})[^)]*?\)`)},
	// optional "no."/"reference" label, optional separator, optional
	// second number after -/ which is ignored (single-PO policy)
	{"po-prefix", regexp.MustCompile(`(?i)\bpo(?:\s*no\.?| reference)?\s*[:#/\-]?\s*(\d{4,6})[^\d\s]*(?:\s*[-/]\s*(\d{4,6}))?\b`)},
	{"code-anchor", regexp.MustCompile(`(?i)(?:\bcode\b|كود)\s*[/:\-]?\s*(?:no\.?|number)?\s*(\d{4,6})`)},
	// Arabic د. abbreviation before or after the number
	{"arabic-d-prefix", regexp.MustCompile(`د\.?\s*(\d{4,6})`)},
	{"arabic-d-suffix", regexp.MustCompile(`(\d{4,6})\s*د\.`)},
}

// ExtractPO runs the prioritized rule table against the normalized form
// of text and returns the first match along with its provenance. Only
// the first captured number is reported even when a rule also captures a
// second one. No rule matching is not an error: the result carries the
// "no PO found" note instead.
func ExtractPO(text string) dto.POResult {
	if text == "" {
		return dto.POResult{Note: "no PO found"}
	}

	normalized := Normalize(text)

	for _, rule := range poRules {
		if m := rule.rx.FindStringSubmatch(normalized); m != nil {
			return dto.POResult{
				Number: m[1],
				Source: "json (" + rule.name + ")",
			}
		}
	}

	return dto.POResult{Note: "no PO found"}
}
