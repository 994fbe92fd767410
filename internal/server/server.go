// Package server exposes the document archive and the scoring pipeline over
// HTTP. Reports are computed from the archive on every request, so newly
// ingested documents show up without a restart.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/bucket"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/config"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/render"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/store"
)

// Server scores the archive on demand and renders reports.
type Server struct {
	cfg     *config.Config
	store   store.Store
	scorer  *tempo.Scorer
	metrics *Metrics
	logger  *log.Logger
}

// New builds a Server around an opened archive. The scorer is constructed
// once from the scoring config; bad granularity or stoplist paths surface
// here rather than on the first request.
func New(cfg *config.Config, st store.Store) (*Server, error) {
	opts, err := cfg.Scoring.ScorerOptions()
	if err != nil {
		return nil, err
	}
	scorer, err := tempo.New(opts)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:     cfg,
		store:   st,
		scorer:  scorer,
		metrics: NewMetrics(),
		logger:  log.New(log.Writer(), "[HTTP] ", log.LstdFlags),
	}, nil
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	e := s.echo()
	s.logger.Printf("listening on %s", s.cfg.Server.Address)
	return e.Start(s.cfg.Server.Address)
}

func (s *Server) echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		s.logger.Printf("%d %s %s: %v", code, req.Method, req.URL.Path, err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]any{"error": msg})
		}
	}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/", s.handleReport)

	api := e.Group("/api")
	api.GET("/scores", s.handleScores)
	api.POST("/documents", s.handleAddDocument)
	api.GET("/documents/count", s.handleCount)

	return e
}

// scoreArchive loads every archived document and runs the scoring pipeline.
func (s *Server) scoreArchive(ctx context.Context) (*tempo.Result, error) {
	docs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list archive: %w", err)
	}

	batch := make([]tempo.Document, 0, len(docs))
	for _, d := range docs {
		batch = append(batch, tempo.Document{Text: d.Text, Date: d.Date})
	}

	start := time.Now()
	result, err := s.scorer.Score(batch)
	s.metrics.ScoringRun(time.Since(start), err == nil)
	if err != nil {
		if errors.Is(err, tempo.ErrInvalidDate) {
			return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return nil, err
	}
	return result, nil
}

func (s *Server) handleReport(c echo.Context) error {
	result, err := s.scoreArchive(c.Request().Context())
	if err != nil {
		return err
	}

	renderer := &render.HTML{
		Title:       s.cfg.Render.Title,
		TopK:        s.cfg.Render.TopK,
		MaxFontSize: s.cfg.Render.MaxFontSize,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if err := renderer.Render(c.Response(), result); err != nil {
		return err
	}
	s.metrics.ReportRendered("html")
	return nil
}

func (s *Server) handleScores(c echo.Context) error {
	topK := s.cfg.Render.TopK
	if raw := c.QueryParam("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("bad top parameter %q", raw))
		}
		topK = n
	}

	result, err := s.scoreArchive(c.Request().Context())
	if err != nil {
		return err
	}

	renderer := &render.JSON{TopK: topK}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if err := renderer.Render(c.Response(), result); err != nil {
		return err
	}
	s.metrics.ReportRendered("json")
	return nil
}

type addDocumentRequest struct {
	Text   string `json:"text"`
	Date   string `json:"date"`
	Source string `json:"source"`
}

// handleAddDocument archives one document. The date is validated against the
// configured layout up front so a bad submission cannot poison later scoring
// runs. Empty text is accepted; a dated empty document still widens the
// corpus by one bucket.
func (s *Server) handleAddDocument(c echo.Context) error {
	var req addDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if _, err := bucket.ParseDate(req.Date, s.cfg.Scoring.DateLayout); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := s.store.Put(c.Request().Context(), store.Doc{
		Text:   req.Text,
		Date:   req.Date,
		Source: req.Source,
	})
	if err != nil {
		return fmt.Errorf("archive document: %w", err)
	}

	s.metrics.DocumentIngested()
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleCount(c echo.Context) error {
	n, err := s.store.Count(c.Request().Context())
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": n})
}
