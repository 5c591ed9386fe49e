package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jomei/notionapi"

	"github.com/colorstacknyu/colorstack-site/internal/config"
	"github.com/colorstacknyu/colorstack-site/internal/domain"
	apperrors "github.com/colorstacknyu/colorstack-site/internal/errors"
	"github.com/colorstacknyu/colorstack-site/internal/metrics"
)

const pageSize = 100

// database is one Notion database plus the client holding its token
type database struct {
	dataset config.Dataset
	client  *notionapi.Client
	sorts   []notionapi.SortObject
}

// notionCollector implements Collector using the Notion API
type notionCollector struct {
	events *database
	team   *database
}

// NewNotionCollector creates a collector for the configured datasets.
// A dataset without credentials is kept so that queries against it report
// CONFIG_MISSING instead of calling Notion.
func NewNotionCollector(cfg *config.Config, opts ...notionapi.ClientOption) Collector {
	base := []notionapi.ClientOption{
		notionapi.WithHTTPClient(newHTTPClient(cfg.UpstreamTimeout)),
		// The first 429 is returned as *notionapi.RateLimitedError.
		notionapi.WithRetry(1),
	}
	opts = append(base, opts...)

	return &notionCollector{
		events: newDatabase(cfg.Events, []notionapi.SortObject{
			{Property: propDate, Direction: notionapi.SortOrderASC},
		}, opts),
		team: newDatabase(cfg.Team, []notionapi.SortObject{
			{Property: propName, Direction: notionapi.SortOrderASC},
		}, opts),
	}
}

func newDatabase(ds config.Dataset, sorts []notionapi.SortObject, opts []notionapi.ClientOption) *database {
	db := &database{dataset: ds, sorts: sorts}
	if ds.Configured() {
		db.client = notionapi.NewClient(notionapi.Token(ds.Token), opts...)
	}
	return db
}

func newHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

// GetEvents retrieves all event pages sorted by date
func (c *notionCollector) GetEvents(ctx context.Context) ([]domain.Event, error) {
	pages, err := c.events.query(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(pages))
	for _, p := range pages {
		events = append(events, ToEvent(p))
	}
	return events, nil
}

// GetMembers retrieves all member pages sorted by name
func (c *notionCollector) GetMembers(ctx context.Context) ([]domain.Member, error) {
	pages, err := c.team.query(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(pages))
	for _, p := range pages {
		members = append(members, ToMember(p))
	}
	return members, nil
}

// query pages through the whole database
func (db *database) query(ctx context.Context) ([]notionapi.Page, error) {
	ds := db.dataset
	if db.client == nil {
		return nil, apperrors.NewConfigMissingError(
			fmt.Sprintf("Configuration error: Notion credentials for the %s database are not set", ds.Name),
			fmt.Sprintf("Set %s and %s in the environment", ds.TokenVar, ds.DatabaseVar),
		)
	}

	start := time.Now()
	var all []notionapi.Page
	req := &notionapi.DatabaseQueryRequest{
		Sorts:    db.sorts,
		PageSize: pageSize,
	}

	for {
		resp, err := db.client.Database.Query(ctx, notionapi.DatabaseID(ds.DatabaseID), req)
		if err != nil {
			appErr := translateError(ds, err)
			metrics.UpstreamQueries.WithLabelValues(ds.Name, string(appErr.Code)).Inc()
			slog.Error("notion query failed", "dataset", ds.Name, "database_id", ds.DatabaseID, "err", err)
			return nil, appErr
		}

		all = append(all, resp.Results...)

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		req.StartCursor = resp.NextCursor
	}

	metrics.UpstreamQueries.WithLabelValues(ds.Name, "ok").Inc()
	metrics.UpstreamDuration.WithLabelValues(ds.Name).Observe(time.Since(start).Seconds())
	slog.Info("queried notion database", "dataset", ds.Name, "pages", len(all))
	return all, nil
}

// translateError maps Notion failures onto the error taxonomy
func translateError(ds config.Dataset, err error) *apperrors.AppError {
	var rateErr *notionapi.RateLimitedError
	if errors.As(err, &rateErr) {
		return apperrors.NewUpstreamError(
			fmt.Sprintf("Failed to fetch %s data from Notion", ds.Name),
			errors.New("rate limited by Notion (HTTP 429)"),
		)
	}

	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == "unauthorized" || apiErr.Status == http.StatusUnauthorized:
			return apperrors.NewUnauthorizedError(
				"Unauthorized: Check your API token and database permissions",
				fmt.Sprintf("Make sure your integration is shared with the %s database", ds.Name),
				err,
			)
		case apiErr.Code == "object_not_found" || apiErr.Status == http.StatusNotFound:
			return apperrors.NewNotFoundError(
				fmt.Sprintf("Database not found: Check your %s", ds.DatabaseVar),
				ds.DatabaseID,
				err,
			)
		}
		return apperrors.NewUpstreamError(fmt.Sprintf("Failed to fetch %s data from Notion", ds.Name), errors.New(apiErr.Message))
	}
	return apperrors.NewUpstreamError(fmt.Sprintf("Failed to fetch %s data from Notion", ds.Name), err)
}
