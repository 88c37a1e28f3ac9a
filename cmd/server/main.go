package main

import (
	"fmt"
	"log"

	"trialscope/internal/config"
	"trialscope/internal/handler"
	"trialscope/internal/router"
	"trialscope/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize services
	batchSvc := service.NewBatchService()

	// Initialize handlers
	batchH := handler.NewBatchHandler(batchSvc, cfg.Upload.MaxFileSizeBytes(), cfg.Upload.MaxFiles)
	fieldH := handler.NewFieldHandler(batchSvc)
	exportH := handler.NewExportHandler(batchSvc, cfg.Export.SheetName)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(batchH, fieldH, exportH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
