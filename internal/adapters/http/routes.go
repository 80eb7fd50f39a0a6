package router

import (
	"net/http"
	"time"

	"github.com/VictorKimathi/medical-ai-assistant/internal/adapters/http/handler"
	"github.com/VictorKimathi/medical-ai-assistant/internal/adapters/http/middleware"
	"github.com/VictorKimathi/medical-ai-assistant/internal/adapters/http/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AnalysisHandler *handler.AnalysisHandler
}

func SetupRoutes(config RouterConfig) *gin.Engine {

	h := config.AnalysisHandler

	g := gin.New()
	g.MaxMultipartMemory = h.MaxUploadBytes
	g.SetHTMLTemplate(web.Templates())
	g.Use(
		middleware.AddRequestIDAndTime(),
		middleware.PanicRecoveryMiddleware(h.Logger),
		middleware.LoggingRequestMiddleware(h.Logger),
	)

	g.StaticFS("/static", http.FS(web.Static()))

	// page routes
	g.Handle("GET", "/", h.HomePageHandler)
	g.Handle("POST", "/analyze", middleware.LimitUploadSize(h.MaxUploadBytes), h.AnalyzePageHandler)

	// json api
	api := g.Group("/api/v1")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowWildcard:    true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	{
		api.Handle("POST", "/analyses", middleware.LimitUploadSize(h.MaxUploadBytes), h.AnalyzeAPIHandler)
		// preflight is answered by the cors middleware
		api.Handle("OPTIONS", "/analyses", func(c *gin.Context) {})
	}

	g.Handle("GET", "/health", h.HealthHandler)

	return g

}
