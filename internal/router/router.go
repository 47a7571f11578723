package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "docsage/docs"
	"docsage/internal/config"
	"docsage/internal/handler"
	"docsage/internal/metrics"
	"docsage/internal/middleware"
	"docsage/internal/port"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	verifier port.TokenVerifier,
	m *metrics.Metrics,
	askH *handler.AskHandler,
	extractionH *handler.ExtractionHandler,
	conversationH *handler.ConversationHandler,
	documentH *handler.DocumentHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(&cfg.CORS))

	// Health checks and operational endpoints
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Protected routes - require valid bearer token
	protected := v1.Group("")
	protected.Use(middleware.Auth(verifier))

	protected.POST("/ask", askH.Ask)

	protected.POST("/extract", extractionH.Extract)
	protected.GET("/extractions/:document_hash", extractionH.Poll)
	protected.DELETE("/extractions/:document_hash", extractionH.Invalidate)

	conversations := protected.Group("/conversations")
	conversations.GET("", conversationH.List)
	conversations.DELETE("/:document_hash/question", conversationH.Delete)
	conversations.DELETE("/:document_hash", conversationH.DeleteAll)

	documents := protected.Group("/documents")
	documents.POST("", documentH.Ingest)
	documents.GET("/:document_hash/text", documentH.GetText)
	documents.GET("/:document_hash/export", exportH.Export)

	return r
}
