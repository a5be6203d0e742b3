package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tridenda/talentlytica/internal/config"
	"github.com/tridenda/talentlytica/internal/handler"
	"github.com/tridenda/talentlytica/internal/middleware"
	"github.com/tridenda/talentlytica/internal/response"
)

// rosterMaxAge is how long clients may cache the roster; it only changes
// on restart.
const rosterMaxAge = 300

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Roster *handler.RosterHandler
	Form   *handler.FormHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", response.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{response.HeaderRequestID, "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	router.Use(middleware.BrotliWithConfig(middleware.BrotliConfig{
		Quality:   middleware.DefaultBrotliConfig.Quality,
		MinLength: middleware.DefaultBrotliConfig.MinLength,
		Skipper:   middleware.SkipSpreadsheets,
	}))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// ─── 1. Roster (static for the process lifetime) ───────────────────
	api.GET("/roster", middleware.CacheControl(rosterMaxAge), handlers.Roster.GetRoster)

	// ─── 2. Form sessions ──────────────────────────────────────────────
	formLimiter := middleware.NewRateLimiter(cfg.FormCreateRate, time.Minute)

	forms := api.Group("/forms")
	forms.Use(middleware.NoStore())
	{
		forms.POST("", formLimiter.Middleware(), handlers.Form.CreateForm)
		forms.DELETE("/:form_id", handlers.Form.DeleteForm)

		forms.GET("/:form_id/grades", handlers.Form.GetGrid)
		forms.PUT("/:form_id/grades", handlers.Form.SetGrade)
		forms.GET("/:form_id/grades/:student_id/:aspect_id", handlers.Form.GetGrade)

		forms.POST("/:form_id/export", handlers.Form.Export)
		forms.GET("/:form_id/export/json", handlers.Form.ExportJSON)
		forms.GET("/:form_id/export/xlsx", handlers.Form.ExportExcel)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router
}
