package utils

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArabicDigits(t *testing.T) {
	assert.Equal(t, "123", Normalize("١٢٣"))
	assert.Equal(t, "456", Normalize("۴۵۶"))
	assert.Equal(t, "0123456789", Normalize("٠١٢٣٤٥٦٧٨٩"))
	assert.Equal(t, "0123456789", Normalize("۰۱۲۳۴۵۶۷۸۹"))
}

func TestNormalizeFullWidthForms(t *testing.T) {
	// NFKC folds fullwidth digits, then brackets become spaces
	assert.Equal(t, "1234", Normalize("（１２３４）"))
	assert.Equal(t, "PO:7906", Normalize("PO：7906"))
}

func TestNormalizeStripsCombiningMarks(t *testing.T) {
	out := Normalize("اً")
	for _, r := range out {
		assert.False(t, unicode.Is(unicode.Mn, r), "combining mark %U survived normalization", r)
	}

	// Latin accents decompose under NFKC-compatible forms too
	assert.NotContains(t, Normalize("café"), "́")
}

func TestNormalizeRemovesBidiMarks(t *testing.T) {
	out := Normalize("‏رقم‎ 1234‪end‬")
	for _, r := range out {
		switch r {
		case '‎', '‏', '‪', '‫', '‬', '‭', '‮':
			t.Fatalf("bidi mark %U survived normalization", r)
		}
	}
}

func TestNormalizePunctuationFolds(t *testing.T) {
	assert.Equal(t, "a-b-c", Normalize("a–b—c"))
	assert.Equal(t, "1234", Normalize("[1234]"))
	assert.Equal(t, "a b", Normalize("aـb"))
	assert.Equal(t, "a b", Normalize("a b"))
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "foo bar", Normalize("  foo \t  bar  "))
	// newlines are preserved, only space/tab runs collapse
	assert.Equal(t, "foo \n bar", Normalize("foo  \n  bar"))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text 1234",
		"وجبات غذائية د. ١٧٣٤١٧",
		"PO：٧٩٠٦ (test)‏",
		"  mixed ـ （５６７８）  ",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize not idempotent for %q", in)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}
