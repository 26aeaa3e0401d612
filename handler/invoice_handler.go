package handler

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/3madMostafa/test-json-ocr/dto"
	"github.com/3madMostafa/test-json-ocr/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	csvContentType  = "text/csv"
)

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	exportService  *service.ExportService
}

func NewInvoiceHandler(invoiceService *service.InvoiceService, exportService *service.ExportService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		exportService:  exportService,
	}
}

// Extract handles the POST /invoices/extract endpoint
func (h *InvoiceHandler) Extract(c *gin.Context) {
	log.Println("Received invoice extraction request")

	files, ok := h.uploadedFiles(c)
	if !ok {
		return
	}

	log.Printf("Processing %d invoice files", len(files))

	response := h.invoiceService.ProcessFiles(files)
	if response.Processed == 0 && response.Failed > 0 {
		h.sendError(c, http.StatusBadRequest, response.Errors[0], nil)
		return
	}

	log.Printf("Invoice extraction completed: %d records, %d failed files", response.Processed, response.Failed)
	c.JSON(http.StatusOK, response)
}

// ExtractText handles the POST /invoices/extract-text endpoint, running
// PO extraction directly on a raw string
func (h *InvoiceHandler) ExtractText(c *gin.Context) {
	var request dto.ExtractTextRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "text is required", err)
		return
	}

	result := h.invoiceService.ExtractFromText(request.Text)
	c.JSON(http.StatusOK, result)
}

// Export handles the POST /invoices/export endpoint and streams back a
// workbook (default) or CSV of the extracted field mappings
func (h *InvoiceHandler) Export(c *gin.Context) {
	files, ok := h.uploadedFiles(c)
	if !ok {
		return
	}

	response := h.invoiceService.ProcessFiles(files)
	if response.Processed == 0 {
		message := "No invoice records could be processed"
		if len(response.Errors) > 0 {
			message = response.Errors[0]
		}
		h.sendError(c, http.StatusBadRequest, message, nil)
		return
	}

	name := fmt.Sprintf("invoice_extraction_%s", uuid.NewString())

	switch format := c.DefaultQuery("format", "xlsx"); format {
	case "xlsx":
		data, err := h.exportService.WriteXLSX(response.Records)
		if err != nil {
			h.sendError(c, http.StatusInternalServerError, "Failed to build workbook", err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))
		c.Data(http.StatusOK, xlsxContentType, data)
	case "csv":
		data, err := h.exportService.WriteCSV(response.Records)
		if err != nil {
			h.sendError(c, http.StatusInternalServerError, "Failed to build CSV", err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, name))
		c.Data(http.StatusOK, csvContentType, data)
	default:
		h.sendError(c, http.StatusBadRequest, "Unsupported export format: "+format, nil)
	}
}

// uploadedFiles parses and validates the multipart upload, replying with
// an error response itself when the request is unusable
func (h *InvoiceHandler) uploadedFiles(c *gin.Context) ([]*multipart.FileHeader, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return nil, false
	}

	files := form.File["files[]"]
	request := &dto.ExtractRequest{Files: files}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return nil, false
	}

	return files, true
}

// sendError sends a structured error response
func (h *InvoiceHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
