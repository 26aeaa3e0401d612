package service

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// invoiceRecordSchema mirrors the tax-portal invoice envelope. It is
// deliberately loose - extraction must survive malformed records, so
// violations surface as per-record warnings, never as failures.
const invoiceRecordSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "uuid": {"type": "string"},
    "internalId": {"type": ["string", "number"]},
    "status": {"type": "string"},
    "typeName": {"type": "string"},
    "issuerId": {"type": ["string", "number"]},
    "issuerName": {"type": "string"},
    "receiverId": {"type": ["string", "number"]},
    "receiverName": {"type": "string"},
    "dateTimeIssued": {"type": "string"},
    "dateTimeReceived": {"type": "string"},
    "serviceDeliveryDate": {"type": "string"},
    "totalSales": {"type": ["string", "number"]},
    "totalDiscount": {"type": ["string", "number"]},
    "netAmount": {"type": ["string", "number"]},
    "total": {"type": ["string", "number"]},
    "document": {"type": ["string", "object"]}
  }
}`

// RecordValidator checks decoded invoice records against the portal
// envelope schema.
type RecordValidator struct {
	schema *jsonschema.Schema
}

func NewRecordValidator() (*RecordValidator, error) {
	schema, err := jsonschema.CompileString("invoice-record.json", invoiceRecordSchema)
	if err != nil {
		return nil, fmt.Errorf("compile invoice schema: %w", err)
	}
	return &RecordValidator{schema: schema}, nil
}

// Validate reports the first structural problem with a decoded record.
func (v *RecordValidator) Validate(record any) error {
	if err := v.schema.Validate(record); err != nil {
		msg := err.Error()
		if i := strings.Index(msg, "\n"); i > 0 {
			msg = msg[:i]
		}
		return fmt.Errorf("record shape: %s", msg)
	}
	return nil
}
