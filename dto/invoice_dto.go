package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexString decodes a JSON value that may arrive as a string, a number
// or null. The tax portal switched several attributes (totals, ids,
// activity codes) between string and numeric encodings across document
// type versions; every exported value folds to a plain string.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
		return nil
	}

	if string(data) == "null" {
		*f = ""
		return nil
	}

	// Booleans and other scalars: keep the raw token without quotes
	*f = FlexString(strings.Trim(string(data), `"`))
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// InvoiceRecord is the tax-portal invoice envelope. Only the attributes
// the extractor consumes are declared; everything else in the upload is
// ignored. The record is read-only input and is never mutated.
type InvoiceRecord struct {
	UUID                string          `json:"uuid"`
	InternalID          FlexString      `json:"internalId"`
	Status              string          `json:"status"`
	TypeName            string          `json:"typeName"`
	IssuerID            FlexString      `json:"issuerId"`
	IssuerName          string          `json:"issuerName"`
	ReceiverID          FlexString      `json:"receiverId"`
	ReceiverName        string          `json:"receiverName"`
	DateTimeIssued      string          `json:"dateTimeIssued"`
	DateTimeReceived    string          `json:"dateTimeReceived"`
	ServiceDeliveryDate string          `json:"serviceDeliveryDate"`
	TotalSales          FlexString      `json:"totalSales"`
	TotalDiscount       FlexString      `json:"totalDiscount"`
	NetAmount           FlexString      `json:"netAmount"`
	Total               FlexString      `json:"total"`
	Document            json.RawMessage `json:"document"`
}

// InvoiceDocument is the nested document payload carried inside a record.
// Depending on portal version it arrives either as a JSON object or as a
// JSON string holding the encoded object.
type InvoiceDocument struct {
	DocumentType         string        `json:"documentType"`
	DocumentTypeVersion  FlexString    `json:"documentTypeVersion"`
	TaxpayerActivityCode FlexString    `json:"taxpayerActivityCode"`
	InvoiceLines         []InvoiceLine `json:"invoiceLines"`
	Issuer               Party         `json:"issuer"`
	Receiver             Party         `json:"receiver"`
}

// InvoiceLine carries the free-text description humans stuff PO numbers into.
type InvoiceLine struct {
	Description string `json:"description"`
}

// Party is either side of the invoice (issuer or receiver).
type Party struct {
	Address Address `json:"address"`
}

// Address is the nested address sub-object of a party.
type Address struct {
	Street         string     `json:"street"`
	BuildingNumber FlexString `json:"buildingNumber"`
	RegionCity     string     `json:"regionCity"`
	Governate      string     `json:"governate"`
}

// FullAddress joins the populated address parts with single spaces.
func (a *Address) FullAddress() string {
	parts := []string{}

	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	if a.BuildingNumber != "" {
		parts = append(parts, a.BuildingNumber.String())
	}
	if a.RegionCity != "" {
		parts = append(parts, a.RegionCity)
	}
	if a.Governate != "" {
		parts = append(parts, a.Governate)
	}

	return strings.Join(parts, " ")
}

// ResolveDocument returns the nested document, parsing it first when the
// portal double-encoded it as a JSON string. A nil document (absent or
// null) is not an error; an unparseable one is, and the caller is
// expected to recover by skipping document-derived fields.
func (r *InvoiceRecord) ResolveDocument() (*InvoiceDocument, error) {
	if len(r.Document) == 0 || string(r.Document) == "null" {
		return nil, nil
	}

	raw := []byte(r.Document)

	// Parse-if-string: resolved once here, nowhere else
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = []byte(encoded)
	}

	var doc InvoiceDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse nested document: %w", err)
	}

	return &doc, nil
}
