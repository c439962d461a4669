package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"direct-ads/internal/core/domain"
	"direct-ads/internal/core/port"
)

const getSummaryStatMethod = "GetSummaryStat"

// DefaultMethodLimit is the statistics API ceiling on campaign ids times
// days in one call.
const DefaultMethodLimit = 1000

type summaryStatParam struct {
	CampaignIDS []int64 `json:"CampaignIDS"`
	StartDate   string  `json:"StartDate"`
	EndDate     string  `json:"EndDate"`
}

type summaryStatItem struct {
	CampaignID int64   `json:"CampaignID"`
	StatDate   string  `json:"StatDate"`
	SumSearch  float64 `json:"SumSearch"`
	SumContext float64 `json:"SumContext"`
}

// ExpenseAggregator sums daily spend over all campaigns while keeping every
// statistics call under the method limit.
type ExpenseAggregator struct {
	registry    *CampaignRegistry
	gateway     port.DirectGateway
	policy      domain.CurrencyPolicy
	location    *time.Location
	methodLimit int
	logger      *slog.Logger

	now func() time.Time
}

// NewExpenseAggregator creates an aggregator from settings. A nil location
// means UTC and a non-positive limit means DefaultMethodLimit.
func NewExpenseAggregator(registry *CampaignRegistry, gateway port.DirectGateway, settings Settings, logger *slog.Logger) *ExpenseAggregator {
	loc := settings.Location
	if loc == nil {
		loc = time.UTC
	}
	limit := settings.MethodLimit
	if limit <= 0 {
		limit = DefaultMethodLimit
	}
	return &ExpenseAggregator{
		registry:    registry,
		gateway:     gateway,
		policy:      settings.Policy,
		location:    loc,
		methodLimit: limit,
		logger:      logger,
		now:         time.Now,
	}
}

// GetExpenses returns spend per day for the closed range [now-daysBack,
// now] in the platform time zone. Campaign ids are split into chunks so
// that ids times days stays within the method limit, and one call is made
// per chunk. Any failure yields an empty map, never a partial one.
func (e *ExpenseAggregator) GetExpenses(ctx context.Context, daysBack int) domain.Outcome[domain.ExpenseMap] {
	costs, err := e.collect(ctx, daysBack)
	if err != nil {
		e.logger.Error("expenses aggregation failed", slog.Int("days_back", daysBack), slog.Any("error", err))
		return domain.Defaulted(domain.ExpenseMap{}, err)
	}
	return domain.Succeeded(costs)
}

func (e *ExpenseAggregator) collect(ctx context.Context, daysBack int) (domain.ExpenseMap, error) {
	if daysBack < 0 {
		return nil, fmt.Errorf("days back must not be negative, got %d", daysBack)
	}
	if daysBack > domain.MaxDaysBack {
		return nil, fmt.Errorf("days back must not exceed %d, got %d", domain.MaxDaysBack, daysBack)
	}
	days := DayRange(e.now(), daysBack, e.location)
	if len(days) >= e.methodLimit {
		e.logger.Error("too many days for one statistics call",
			slog.Int("days", len(days)), slog.Int("method_limit", e.methodLimit))
	}
	size := MaxIDsPerChunk(len(days), e.methodLimit)

	campaigns, err := e.registry.ListCampaigns(ctx, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	chunks := ChunkIDs(ids, size)
	e.logger.Info("collecting expenses",
		slog.Int("calls", len(chunks)), slog.String("method", getSummaryStatMethod),
		slog.String("start", days[0]), slog.String("end", days[len(days)-1]))

	costs := domain.ExpenseMap{}
	for _, chunk := range chunks {
		param := summaryStatParam{
			CampaignIDS: chunk,
			StartDate:   days[0],
			EndDate:     days[len(days)-1],
		}
		resp, err := e.gateway.CallLegacy(ctx, getSummaryStatMethod, param)
		if err != nil {
			return nil, err
		}
		var items []summaryStatItem
		if err = json.Unmarshal(resp.Data, &items); err != nil {
			return nil, &domain.RemoteError{Method: getSummaryStatMethod, Err: fmt.Errorf("decode data: %w", err)}
		}
		for _, it := range items {
			day, err := time.Parse(domain.DateLayout, it.StatDate)
			if err != nil {
				return nil, fmt.Errorf("stat date %q: %w", it.StatDate, err)
			}
			costs.Add(day.Format(domain.DateLayout), e.policy.Spend(it.SumSearch, it.SumContext))
		}
	}
	return costs, nil
}

// DayRange lists the calendar days from now-daysBack to now inclusive, as
// seen in loc.
func DayRange(now time.Time, daysBack int, loc *time.Location) []string {
	end := now.In(loc)
	start := end.AddDate(0, 0, -daysBack)
	days := make([]string, 0, daysBack+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(domain.DateLayout))
	}
	return days
}

// MaxIDsPerChunk returns how many campaign ids fit in one call covering
// numDays days. When numDays alone reaches the limit it falls back to 1;
// the resulting number of calls is not checked against any rate limit.
func MaxIDsPerChunk(numDays, limit int) int {
	if numDays <= 0 {
		return limit
	}
	if numDays >= limit {
		return 1
	}
	return limit / numDays
}

// ChunkIDs splits ids into consecutive windows of size elements, the last
// one possibly shorter. Order is preserved.
func ChunkIDs(ids []int64, size int) [][]int64 {
	if size <= 0 {
		size = 1
	}
	chunks := make([][]int64, 0, (len(ids)+size-1)/size)
	for i := 0; i < len(ids); i += size {
		end := min(i+size, len(ids))
		chunks = append(chunks, ids[i:end])
	}
	return chunks
}
