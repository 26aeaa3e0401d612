package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"github.com/3madMostafa/test-json-ocr/dto"
	"github.com/3madMostafa/test-json-ocr/utils"
)

// fallbackFilename labels records that did not arrive as a named upload
// (pasted or inline JSON).
const fallbackFilename = "JSON_DATA"

type InvoiceService struct {
	validator *RecordValidator
}

func NewInvoiceService(validator *RecordValidator) *InvoiceService {
	return &InvoiceService{
		validator: validator,
	}
}

// ProcessFiles decodes and extracts every uploaded invoice file. Files
// are processed concurrently; extraction holds no state between calls so
// the fan-out needs no coordination beyond collecting results. Output
// order follows upload order regardless of completion order.
func (s *InvoiceService) ProcessFiles(files []*multipart.FileHeader) *dto.ExtractResponse {
	results := make([][]dto.RecordResult, len(files))
	failures := make([]error, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			records, err := s.processFile(fh)
			if err != nil {
				failures[i] = fmt.Errorf("%s: %w", fh.Filename, err)
				return
			}
			results[i] = records
		}(i, file)
	}
	wg.Wait()

	response := &dto.ExtractResponse{
		ProcessedAt: time.Now().Format(time.RFC3339),
	}
	for i := range files {
		if failures[i] != nil {
			response.Failed++
			response.Errors = append(response.Errors, failures[i].Error())
			continue
		}
		response.Records = append(response.Records, results[i]...)
	}
	response.Processed = len(response.Records)

	return response
}

func (s *InvoiceService) processFile(fh *multipart.FileHeader) ([]dto.RecordResult, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return s.ParseRecords(data, fh.Filename)
}

// ParseRecords decodes one JSON payload, which may hold a single invoice
// record or an array of them, and collects the field mapping for each.
// A payload that is not JSON at all is the only failure mode; anything
// wrong inside a record degrades to empty fields instead.
func (s *InvoiceService) ParseRecords(data []byte, filename string) ([]dto.RecordResult, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("not a JSON invoice payload: %w", err)
	}

	elements, isArray := payload.([]any)
	if !isArray {
		elements = []any{payload}
	}

	var records []dto.InvoiceRecord
	if isArray {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode invoice records: %w", err)
		}
	} else {
		var record dto.InvoiceRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("decode invoice record: %w", err)
		}
		records = []dto.InvoiceRecord{record}
	}

	results := make([]dto.RecordResult, 0, len(records))
	for i := range records {
		var warnings []string
		if s.validator != nil && i < len(elements) {
			if err := s.validator.Validate(elements[i]); err != nil {
				log.Printf("Record %d in %s failed schema check: %v", i, filename, err)
				warnings = append(warnings, err.Error())
			}
		}

		results = append(results, dto.RecordResult{
			Filename: displayName(filename),
			Fields:   s.CollectFields(filename, &records[i]),
			Warnings: warnings,
		})
	}

	return results, nil
}

// CollectFields flattens one invoice record into the fixed field mapping
// (see dto.FieldColumns). Every value is a string and absent attributes
// stay empty. A malformed nested document is recovered locally: the
// document-derived fields are left empty and everything else, including
// the PO extraction over whatever text remains, is still produced.
func (s *InvoiceService) CollectFields(filename string, record *dto.InvoiceRecord) dto.Fields {
	fields := dto.Fields{
		"filename":            displayName(filename),
		"STATUS":              record.Status,
		"uuid":                record.UUID,
		"internalId":          record.InternalID.String(),
		"typeName":            record.TypeName,
		"issuerId":            record.IssuerID.String(),
		"issuerName":          record.IssuerName,
		"receiverId":          record.ReceiverID.String(),
		"receiverName":        record.ReceiverName,
		"dateTimeIssued":      record.DateTimeIssued,
		"dateTimeReceived":    record.DateTimeReceived,
		"serviceDeliveryDate": record.ServiceDeliveryDate,
		"totalSales":          record.TotalSales.String(),
		"totalDiscount":       record.TotalDiscount.String(),
		"netAmount":           record.NetAmount.String(),
		"total":               record.Total.String(),
	}

	doc, err := record.ResolveDocument()
	if err != nil {
		log.Printf("Record %s: document field unreadable, keeping top-level fields: %v", record.UUID, err)
	}
	if doc != nil {
		fields["documentType"] = doc.DocumentType
		fields["documentTypeVersion"] = doc.DocumentTypeVersion.String()
		fields["taxpayerActivityCode"] = doc.TaxpayerActivityCode.String()

		descriptions := []string{}
		for _, line := range doc.InvoiceLines {
			if line.Description != "" {
				descriptions = append(descriptions, line.Description)
			}
		}
		fields["descriptions"] = strings.Join(descriptions, "; ")

		fields["issuer_address"] = doc.Issuer.Address.FullAddress()
		fields["receiver_address"] = doc.Receiver.Address.FullAddress()
	}

	po := utils.ExtractPO(collectText(record, doc))
	fields["PO number"] = po.Number
	fields["PO source"] = po.Source
	fields["PO note"] = po.Note

	for _, column := range dto.FieldColumns {
		if _, ok := fields[column]; !ok {
			fields[column] = ""
		}
	}

	return fields
}

// CollectText assembles the free-text parts of a record that plausibly
// carry a PO number: each line description in order, then the issuer and
// receiver names, then the labelled internal id. Parts are joined with
// newlines and empty parts are omitted.
func (s *InvoiceService) CollectText(record *dto.InvoiceRecord) string {
	doc, _ := record.ResolveDocument()
	return collectText(record, doc)
}

// ExtractFromText runs PO extraction directly on a raw string.
func (s *InvoiceService) ExtractFromText(text string) dto.POResult {
	return utils.ExtractPO(text)
}

func collectText(record *dto.InvoiceRecord, doc *dto.InvoiceDocument) string {
	var parts []string

	if doc != nil {
		for _, line := range doc.InvoiceLines {
			if line.Description != "" {
				parts = append(parts, line.Description)
			}
		}
	}
	if record.IssuerName != "" {
		parts = append(parts, record.IssuerName)
	}
	if record.ReceiverName != "" {
		parts = append(parts, record.ReceiverName)
	}
	if record.InternalID != "" {
		parts = append(parts, "Internal ID: "+record.InternalID.String())
	}

	return strings.Join(parts, "\n")
}

func displayName(filename string) string {
	if filename == "" {
		return fallbackFilename
	}
	return filename
}
