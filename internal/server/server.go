package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/outreachkit/contactscout/internal/app"
)

// Server exposes the extraction pipeline over HTTP.
type Server struct {
	app *app.App
}

func New(a *app.App) *Server {
	return &Server{app: a}
}

// Router builds the gin engine: permissive CORS for front-end development,
// the single extraction route, and a health probe.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), corsAllowAll())

	r.OPTIONS("/*path", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	r.POST("/api/extract", s.handleExtract)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

type extractRequest struct {
	URL string `json:"url"`
}

const missingURLMessage = "A JSON payload with a 'url' field is required."

func (s *Server) handleExtract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingURLMessage})
		return
	}

	list, err := s.app.ExtractContacts(c.Request.Context(), req.URL)
	if err != nil {
		log.Warn().Err(err).Str("url", req.URL).Msg("extraction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func corsAllowAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
