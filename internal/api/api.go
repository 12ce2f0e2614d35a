// Package api exposes the skill sheet exporter over HTTP.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/models"
)

// Exporter is the core the handlers delegate to. *skillsheet.Exporter implements it.
type Exporter interface {
	Render(data models.SkillSheetData) ([]byte, error)
	Extract(r io.Reader) (*models.PartialSkillSheet, error)
	Preview(data models.SkillSheetData) (models.SkillSheetData, error)
	DecodeJSON(data []byte) (json.RawMessage, error)
}

type ServiceDeps struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodySize  int

	// XLSXFileName is the download name of generated workbooks and
	// XLSXFallbackName its ASCII variant for old clients.
	XLSXFileName     string
	XLSXFallbackName string

	Exporter Exporter

	// Clock stamps exported JSON file names. Nil means time.Now.
	Clock func() time.Time
}

type Service struct {
	r      *router.Router
	server *fasthttp.Server
	port   int

	exporter         Exporter
	xlsxFileName     string
	xlsxFallbackName string
	clock            func() time.Time
}

func NewService(d ServiceDeps) *Service {
	rt := router.New()

	s := &Service{
		r:                rt,
		port:             d.Port,
		exporter:         d.Exporter,
		xlsxFileName:     d.XLSXFileName,
		xlsxFallbackName: d.XLSXFallbackName,
		clock:            d.Clock,
	}
	if s.clock == nil {
		s.clock = time.Now
	}

	s.mountRoutes()

	s.server = &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "skillsheet-api",
		ReadTimeout:        d.ReadTimeout,
		WriteTimeout:       d.WriteTimeout,
		MaxRequestBodySize: d.MaxBodySize,
	}

	return s
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Service) Handler() fasthttp.RequestHandler {
	return RecoveryMiddleware(LoggingMiddleware(CORS(s.r.Handler)))
}

// Start serves until ctx is done or the listener fails.
func (s *Service) Start(ctx context.Context) error {
	log.Info().Int("port", s.port).Msg("Starting skill sheet API")

	emergencyShutdown := make(chan error, 1)
	go func() {
		emergencyShutdown <- s.server.ListenAndServe(fmt.Sprintf(":%d", s.port))
	}()

	select {
	case <-ctx.Done():
		return s.server.Shutdown()
	case e := <-emergencyShutdown:
		return e
	}
}

func (s *Service) mountRoutes() {
	// Import
	s.r.POST("/api/upload", s.uploadJSON)
	s.r.POST("/api/import-xlsx", s.importXLSX)

	// Export
	s.r.POST("/api/preview", s.preview)
	s.r.POST("/api/generate-xlsx", s.generateXLSX)
	s.r.POST("/api/export-json", s.exportJSON)

	// Health
	s.r.GET("/health", s.healthHandler)
}
