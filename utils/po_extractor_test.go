package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3madMostafa/test-json-ocr/dto"
)

func TestExtractPOArabicMeals(t *testing.T) {
	result := ExtractPO("وجبات غذائية د. 173417")

	assert.Equal(t, "173417", result.Number)
	assert.Equal(t, "json (arabic-meals)", result.Source)
	assert.Equal(t, "", result.Note)
}

func TestExtractPOPriorityOverStandaloneNumber(t *testing.T) {
	// An explicit PO NUM label must win over an unrelated 6-digit number
	result := ExtractPO("item code 173128\nPO NUM: 7906")

	assert.Equal(t, "7906", result.Number)
	assert.Equal(t, "json (po-num-colon)", result.Source)
}

func TestExtractPOForwardSlash(t *testing.T) {
	result := ExtractPO("PO/172237 other content")
	assert.Equal(t, "172237", result.Number)
	assert.Equal(t, "json (po-forward-slash)", result.Source)

	// lowercase po still matches via the case-insensitive rule
	result = ExtractPO("po/172237 other content")
	assert.Equal(t, "172237", result.Number)
	assert.Equal(t, "json (po-forward-slash)", result.Source)
}

func TestExtractPONumConcatDate(t *testing.T) {
	// exactly six leading digits, stopping before the glued d/m/yyyy date
	result := ExtractPO("17418015/8/2025")

	assert.Equal(t, "174180", result.Number)
	assert.Equal(t, "json (num-concat-date)", result.Source)
}

func TestExtractPONumDate(t *testing.T) {
	result := ExtractPO("172829 1/8/2025")

	assert.Equal(t, "172829", result.Number)
	assert.Equal(t, "json (num-date)", result.Source)
}

func TestExtractPOStandaloneSixDigit(t *testing.T) {
	result := ExtractPO("invoice for catering services 173128")

	assert.Equal(t, "173128", result.Number)
	assert.Equal(t, "json (standalone-6digit)", result.Source)
}

func TestExtractPOPrefixSecondaryNumberIgnored(t *testing.T) {
	// single-PO policy: the second number after the separator is discarded
	result := ExtractPO("po no. 1234/5678")

	assert.Equal(t, "1234", result.Number)
	assert.Equal(t, "json (po-prefix)", result.Source)
}

func TestExtractPOCodeAnchor(t *testing.T) {
	result := ExtractPO("كود 12345")
	assert.Equal(t, "12345", result.Number)
	assert.Equal(t, "json (code-anchor)", result.Source)

	result = ExtractPO("code no. 54321 extra")
	assert.Equal(t, "54321", result.Number)
	assert.Equal(t, "json (code-anchor)", result.Source)
}

func TestExtractPOArabicDAbbreviation(t *testing.T) {
	result := ExtractPO("د. 4567")
	assert.Equal(t, "4567", result.Number)
	assert.Equal(t, "json (arabic-d-prefix)", result.Source)

	result = ExtractPO("4567 د.")
	assert.Equal(t, "4567", result.Number)
	assert.Equal(t, "json (arabic-d-suffix)", result.Source)
}

func TestExtractPODigitLengthGuard(t *testing.T) {
	// 3 and 7 digit numbers never qualify, even next to a PO label
	result := ExtractPO("PO: 123")
	assert.Equal(t, dto.POResult{Note: "no PO found"}, result)

	result = ExtractPO("PO: 1234567")
	assert.Equal(t, dto.POResult{Note: "no PO found"}, result)
}

func TestExtractPOArabicIndicDigits(t *testing.T) {
	// normalization runs before matching, so Arabic-Indic digits count
	result := ExtractPO("PO NUM: ٧٩٠٦")

	assert.Equal(t, "7906", result.Number)
	assert.Equal(t, "json (po-num-colon)", result.Source)
}

func TestExtractPOEmptyText(t *testing.T) {
	assert.Equal(t, dto.POResult{Note: "no PO found"}, ExtractPO(""))
}

func TestExtractPONoMatch(t *testing.T) {
	result := ExtractPO("Regular invoice text with no numbers")

	assert.Equal(t, "", result.Number)
	assert.Equal(t, "", result.Source)
	assert.Equal(t, "no PO found", result.Note)
	assert.False(t, result.Found())
}
