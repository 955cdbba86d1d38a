package router

import (
	"github.com/gin-gonic/gin"

	"pricelist/internal/handler"
	"pricelist/internal/metrics"
	"pricelist/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Upload  *handler.UploadHandler
	Product *handler.ProductHandler
	Quote   *handler.QuoteHandler
	Health  *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
// The /metrics route is mounted only when m is non-nil.
func Setup(h Handlers, corsOrigins []string, m *metrics.Metrics) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Routes used by the static price list app
	r.POST("/upload", h.Upload.Upload)
	r.GET("/data.json", h.Product.Artifact)

	v1 := r.Group("/api/v1")

	v1.POST("/pricelist/upload", h.Upload.Upload)

	products := v1.Group("/products")
	products.GET("", h.Product.List)
	products.GET("/export", h.Product.Export)

	v1.POST("/quotes", h.Quote.Create)

	return r
}
