package dto

// POResult is the outcome of one PO extraction pass. A hit carries the
// digits and the rule that produced them, a miss carries the diagnostic
// note; never both.
type POResult struct {
	Number string `json:"po_number"`
	Source string `json:"po_source"`
	Note   string `json:"po_note"`
}

// Found reports whether the pass produced a PO number.
func (r POResult) Found() bool {
	return r.Number != ""
}

// Fields is the flat field mapping produced for one invoice record.
// All values are strings; absent attributes stay empty.
type Fields map[string]string

// FieldColumns fixes the column order for tables and spreadsheet export.
var FieldColumns = []string{
	"filename",
	"STATUS",
	"uuid",
	"internalId",
	"typeName",
	"issuerId",
	"issuerName",
	"receiverId",
	"receiverName",
	"dateTimeIssued",
	"dateTimeReceived",
	"serviceDeliveryDate",
	"totalSales",
	"totalDiscount",
	"netAmount",
	"total",
	"documentType",
	"documentTypeVersion",
	"taxpayerActivityCode",
	"descriptions",
	"issuer_address",
	"receiver_address",
	"PO number",
	"PO source",
	"PO note",
}

// RecordResult is one processed invoice record.
type RecordResult struct {
	Filename string   `json:"filename"`
	Fields   Fields   `json:"fields"`
	Warnings []string `json:"warnings,omitempty"`
}
