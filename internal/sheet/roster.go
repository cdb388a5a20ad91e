package sheet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/cache"
	"github.com/diegoclair/slack-greet-bot/internal/domain"
	"github.com/diegoclair/slack-greet-bot/internal/domain/contract"
	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
	"github.com/diegoclair/slack-greet-bot/internal/metrics"
	"go.uber.org/zap"
)

// Layout of a month tab: member IDs across the header row, hidden marks on
// the row below it, then one row per day of the month starting at dayRowOffset+1.
const (
	headerRow    = 2
	hiddenRow    = 3
	dayRowOffset = 3
	firstColumn  = "G"
	lastColumn   = "BA"
)

var categoryMarks = map[entity.Category]map[string]bool{
	entity.CategoryPresent: {"◎": true, "○": true},
	entity.CategoryLeave:   {"休": true},
	entity.CategoryAMLeave: {"AM休": true, "午前休": true},
	entity.CategoryHidden:  {"×": true, "非表示": true},
}

// Roster reads attendance categories from the monthly tabs of a spreadsheet.
type Roster struct {
	values        contract.SheetValues
	cache         contract.Cache
	spreadsheetID string
	loc           *time.Location
	log           *zap.Logger
}

func NewRoster(values contract.SheetValues, c contract.Cache, spreadsheetID string, loc *time.Location, log *zap.Logger) *Roster {
	return &Roster{
		values:        values,
		cache:         c,
		spreadsheetID: spreadsheetID,
		loc:           loc,
		log:           log,
	}
}

func (r *Roster) Members(ctx context.Context, date time.Time, category entity.Category) ([]string, error) {
	marks, ok := categoryMarks[category]
	if !ok {
		return nil, fmt.Errorf("unknown roster category %q", category)
	}

	local := date.In(r.loc)
	month := fmt.Sprintf("%d/%d", local.Year(), int(local.Month()))

	header, err := r.row(ctx, month, headerRow)
	if err != nil {
		return nil, err
	}

	markRow := local.Day() + dayRowOffset
	if category == entity.CategoryHidden {
		markRow = hiddenRow
	}
	cells, err := r.row(ctx, month, markRow)
	if err != nil {
		return nil, err
	}

	var ids []string
	for i, cell := range cells {
		if !marks[strings.TrimSpace(cell)] || i >= len(header) {
			continue
		}
		id := strings.TrimSpace(header[i])
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// row returns the cells of one row of a month tab, as strings.
func (r *Roster) row(ctx context.Context, month string, n int) ([]string, error) {
	key := cache.SheetRowKey(month, n)

	var cells []string
	hit, err := r.cache.Get(ctx, key, &cells)
	if err != nil {
		r.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	metrics.CacheLookups.WithLabelValues("sheet", metrics.CacheResult(hit)).Inc()
	if hit {
		r.log.Debug("cache hit", zap.String("key", key))
		return cells, nil
	}

	readRange := fmt.Sprintf("%s!%s%d:%s%d", month, firstColumn, n, lastColumn, n)
	values, err := r.values.Values(ctx, r.spreadsheetID, readRange)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("sheet").Inc()
		return nil, err
	}

	cells = []string{}
	if len(values) > 0 {
		for _, v := range values[0] {
			cells = append(cells, fmt.Sprint(v))
		}
	}

	if err := r.cache.Set(ctx, key, cells, domain.RosterTTL); err != nil {
		r.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return cells, nil
}
