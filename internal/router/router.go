package router

import (
	"github.com/gin-gonic/gin"

	"trialscope/internal/handler"
	"trialscope/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	batchH *handler.BatchHandler,
	fieldH *handler.FieldHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	// Field catalog and selection
	fields := v1.Group("/fields")
	fields.GET("", fieldH.List)
	fields.PUT("/selection", fieldH.SetSelection)

	// Batch processing
	batches := v1.Group("/batches")
	batches.POST("", batchH.Create)
	batches.GET("/current", batchH.Current)

	// Export
	exp := v1.Group("/export")
	exp.GET("/html", exportH.HTML)
	exp.GET("/csv", exportH.CSV)
	exp.GET("/xlsx", exportH.XLSX)

	return r
}
