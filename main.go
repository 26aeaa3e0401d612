package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/3madMostafa/test-json-ocr/config"
	"github.com/3madMostafa/test-json-ocr/handler"
	"github.com/3madMostafa/test-json-ocr/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	// Initialize record validator
	validator, err := service.NewRecordValidator()
	if err != nil {
		log.Fatalf("Failed to compile invoice schema: %v", err)
	}

	// Initialize service layer
	invoiceService := service.NewInvoiceService(validator)
	exportService := service.NewExportService()

	// Initialize handler layer
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, exportService)

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Invoice PO Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		invoices := api.Group("/invoices")
		{
			invoices.POST("/extract", invoiceHandler.Extract)
			invoices.POST("/extract-text", invoiceHandler.ExtractText)
			invoices.POST("/export", invoiceHandler.Export)
		}
	}

	// Start server
	log.Printf("Starting Invoice PO Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
