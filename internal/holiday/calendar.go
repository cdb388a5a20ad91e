package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/cache"
	"github.com/diegoclair/slack-greet-bot/internal/domain"
	"github.com/diegoclair/slack-greet-bot/internal/domain/contract"
	"github.com/diegoclair/slack-greet-bot/internal/metrics"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Calendar answers holiday lookups from the holidays-jp yearly tables
// ({baseURL}/{year}/date.json), keyed by date in the calendar's timezone.
type Calendar struct {
	httpClient *http.Client
	baseURL    string
	cache      contract.Cache
	loc        *time.Location
	log        *zap.Logger
}

func New(httpClient *http.Client, baseURL string, c contract.Cache, loc *time.Location, log *zap.Logger) *Calendar {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Calendar{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		cache:      c,
		loc:        loc,
		log:        log,
	}
}

func (c *Calendar) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	local := date.In(c.loc)

	holidays, err := c.holidays(ctx, local.Year())
	if err != nil {
		return false, err
	}

	_, ok := holidays[local.Format(dateLayout)]
	return ok, nil
}

func (c *Calendar) holidays(ctx context.Context, year int) (map[string]string, error) {
	key := cache.HolidaysKey(year)

	var holidays map[string]string
	hit, err := c.cache.Get(ctx, key, &holidays)
	if err != nil {
		c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	metrics.CacheLookups.WithLabelValues("holiday", metrics.CacheResult(hit)).Inc()
	if hit {
		c.log.Debug("cache hit", zap.String("key", key))
		return holidays, nil
	}

	holidays, err = c.fetch(ctx, year)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("holiday").Inc()
		return nil, err
	}

	if err := c.cache.Set(ctx, key, holidays, domain.HolidayTTL); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return holidays, nil
}

func (c *Calendar) fetch(ctx context.Context, year int) (map[string]string, error) {
	url := fmt.Sprintf("%s/%d/date.json", c.baseURL, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch holidays: unexpected status %d", resp.StatusCode)
	}

	// the payload must be a flat object of date -> holiday name
	var holidays map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidHolidayPayload, err)
	}
	if holidays == nil {
		return nil, fmt.Errorf("%w: empty body", domain.ErrInvalidHolidayPayload)
	}

	return holidays, nil
}
