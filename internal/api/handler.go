package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/colorstacknyu/colorstack-site/internal/bucket"
	"github.com/colorstacknyu/colorstack-site/internal/calendar"
	"github.com/colorstacknyu/colorstack-site/internal/collector"
	"github.com/colorstacknyu/colorstack-site/internal/config"
	"github.com/colorstacknyu/colorstack-site/internal/domain"
	apperrors "github.com/colorstacknyu/colorstack-site/internal/errors"
	"github.com/colorstacknyu/colorstack-site/internal/metrics"
	"github.com/colorstacknyu/colorstack-site/internal/mock"
)

// Handler handles API requests
type Handler struct {
	collector collector.Collector
	cfg       *config.Config
	loc       *time.Location
	now       func() time.Time
}

// NewHandler creates a new API handler
func NewHandler(c collector.Collector, cfg *config.Config) *Handler {
	return &Handler{
		collector: c,
		cfg:       cfg,
		loc:       cfg.Location(),
		now:       time.Now,
	}
}

// GetEvents returns every event with a title and a start
// GET /api/events
func (h *Handler) GetEvents(c *gin.Context) {
	events, err := h.loadEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
	})
}

// GetCalendar returns the events as an iCalendar feed
// GET /api/events/calendar.ics
func (h *Handler) GetCalendar(c *gin.Context) {
	events, err := h.loadEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	feed := calendar.Feed(events, h.loc, h.now())
	c.Header("Content-Disposition", `inline; filename="colorstack-events.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

// loadEvents queries the events database, or serves the offline dataset
// when credentials are missing outside production.
func (h *Handler) loadEvents(ctx context.Context) ([]domain.Event, error) {
	ds := h.cfg.Events
	if !ds.Configured() {
		if err := h.mockAllowed(ds); err != nil {
			return nil, err
		}
		metrics.MockResponses.WithLabelValues(ds.Name).Inc()
		return mock.Events()
	}

	events, err := h.collector.GetEvents(ctx)
	if err != nil {
		return nil, err
	}

	valid := domain.ValidEvents(events)
	if dropped := len(events) - len(valid); dropped > 0 {
		metrics.RecordsDropped.WithLabelValues(ds.Name).Add(float64(dropped))
		slog.Debug("dropped events without title or start", "count", dropped)
	}
	slog.Info("returning events", "count", len(valid))
	return valid, nil
}

// GetTeam returns the roster grouped into leadership, core and Hall of Fame
// GET /api/team
func (h *Handler) GetTeam(c *gin.Context) {
	ds := h.cfg.Team
	if !ds.Configured() {
		if err := h.mockAllowed(ds); err != nil {
			respondError(c, err)
			return
		}
		roster, err := mock.Roster()
		if err != nil {
			respondError(c, apperrors.NewInternalError("failed to load offline team data", err))
			return
		}
		metrics.MockResponses.WithLabelValues(ds.Name).Inc()
		c.JSON(http.StatusOK, roster)
		return
	}

	members, err := h.collector.GetMembers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	roster := bucket.PartitionRoster(members)
	slog.Info("returning team",
		"leadership", len(roster.Leadership),
		"core", len(roster.Core),
		"hall_of_fame", len(roster.HallOfFame),
	)
	c.JSON(http.StatusOK, roster)
}

// mockAllowed returns the configuration error to report, or nil when the
// offline dataset may be served instead.
func (h *Handler) mockAllowed(ds config.Dataset) error {
	err := apperrors.NewConfigMissingError(
		"Configuration error: Notion credentials for the "+ds.Name+" database are not set",
		"Set "+ds.TokenVar+" and "+ds.DatabaseVar+" in the environment",
	)
	if h.cfg.IsProduction() {
		slog.Error("notion credentials missing", "dataset", ds.Name)
		return err
	}
	slog.Warn("notion credentials missing, using mock data", "dataset", ds.Name,
		"hint", "set "+ds.TokenVar+" and "+ds.DatabaseVar+" to use real data")
	return nil
}

// GetResources serves the static resources file
// GET /resources.json
func (h *Handler) GetResources(c *gin.Context) {
	path := h.cfg.ResourcesFile
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		respondError(c, apperrors.NewNotFoundError("resources file not found", "", err))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.File(path)
}

// HealthCheck returns the health status of the API
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"environment": h.cfg.Environment,
		"datasets": gin.H{
			h.cfg.Events.Name: h.cfg.Events.Configured(),
			h.cfg.Team.Name:   h.cfg.Team.Configured(),
		},
	})
}

// respondError sends an error response
func respondError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		slog.Error("unhandled error", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": err.Error(),
			"code":    apperrors.ErrCodeInternal,
		})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Code {
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeUnauthorized:
		status = http.StatusUnauthorized
	case apperrors.ErrCodeBadRequest:
		status = http.StatusBadRequest
	}

	body := gin.H{
		"error": appErr.Message,
		"code":  appErr.Code,
	}
	if appErr.Details != "" {
		body["details"] = appErr.Details
	}
	if appErr.Code == apperrors.ErrCodeNotFound && appErr.Resource != "" {
		body["databaseId"] = appErr.Resource
	}
	c.JSON(status, body)
}
