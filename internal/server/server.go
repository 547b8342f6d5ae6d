// Package server exposes the country validators over an HTTP API.
//
// The server is a thin boundary adapter: it parses requests, calls into the
// country packages, and maps their typed errors to JSON responses keyed by
// error kind. No validation logic lives here, and no decoded personal data
// is logged.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/nidkit/internal/country"
	"github.com/rezonia/nidkit/internal/country/albania"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	registry *country.Registry
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:   config,
		router:   router,
		registry: country.NewRegistry(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/countries", s.handleCountries)
		v1.POST("/decode/albania", s.handleDecodeAlbania)
		v1.POST("/validate/:country", s.handleValidate)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCountries(c *gin.Context) {
	codes := s.registry.Codes()
	countries := make([]CountryInfo, 0, len(codes))
	for _, code := range codes {
		v := s.registry.Get(code)
		countries = append(countries, CountryInfo{
			Code: string(v.Code()),
			Name: v.Name(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

func (s *Server) handleDecodeAlbania(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON with a nid field"})
		return
	}

	info, err := albania.Decode(req.Nid)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Valid: false,
			Error: err.Error(),
			Kind:  country.ErrorKind(err),
		})
		return
	}

	c.JSON(http.StatusOK, DecodeResponse{
		Valid: true,
		Info:  info,
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	code := country.Code(c.Param("country"))
	v := s.registry.Get(code)
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported country code: " + c.Param("country")})
		return
	}

	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON with a nid field"})
		return
	}

	if err := v.Validate(req.Nid); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Valid: false,
			Error: err.Error(),
			Kind:  country.ErrorKind(err),
		})
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{
		Valid:   true,
		Country: string(v.Code()),
	})
}
