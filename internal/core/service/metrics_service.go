package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
	"github.com/pulseboard/dashboard-api/internal/core/query"
)

// Period values accepted by Sales. Anything else falls back to the week view.
const (
	PeriodWeek  = "7d"
	PeriodMonth = "30d"
)

// MetricsService serves the dashboard read model: KPIs, the sales series,
// filtered transaction pages, and the analytics overview.
//
// The randomness used to liven up KPI figures and to synthesise the 30-day
// series is injected, never ambient, so tests can pin it with a fixed seed.
type MetricsService struct {
	transactions ports.TransactionRepository
	metrics      ports.MetricsRepository
	rng          *rand.Rand
	now          func() time.Time
	logger       zerolog.Logger
}

func NewMetricsService(
	transactions ports.TransactionRepository,
	metrics ports.MetricsRepository,
	rng *rand.Rand,
	logger zerolog.Logger,
) *MetricsService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MetricsService{
		transactions: transactions,
		metrics:      metrics,
		rng:          rng,
		now:          time.Now,
		logger:       logger,
	}
}

// WithClock overrides the time source. Intended for tests.
func (s *MetricsService) WithClock(now func() time.Time) *MetricsService {
	s.now = now
	return s
}

// KPIs returns the headline figures with per-request jitter applied to the
// "live" ones (daily revenue, active customers) and a lastUpdated stamp.
func (s *MetricsService) KPIs(ctx context.Context) (*ports.KPIResult, error) {
	base, err := s.metrics.KPIs(ctx)
	if err != nil {
		return nil, err
	}

	base.DailyRevenue += s.rng.Intn(1000)
	base.ActiveCustomers += s.rng.Intn(50)

	return &ports.KPIResult{
		KPISnapshot: base,
		LastUpdated: s.now().UTC().Format(time.RFC3339),
	}, nil
}

// Sales returns the daily sales series for the requested period. The 7-day
// series comes straight from the dataset; the 30-day series is synthesised
// backwards from today, oldest day first.
func (s *MetricsService) Sales(ctx context.Context, period string) ([]domain.SalesPoint, error) {
	if period != PeriodMonth {
		if period != PeriodWeek && period != "" {
			s.logger.Debug().Str("period", period).Msg("unknown sales period, serving week view")
		}
		return s.metrics.SalesWeek(ctx)
	}

	points := make([]domain.SalesPoint, 30)
	today := s.now().UTC()
	for i := 0; i < 30; i++ {
		day := today.AddDate(0, 0, -i)
		points[29-i] = domain.SalesPoint{
			Date:      day.Format("2006-01-02"),
			Sales:     10000 + s.rng.Intn(25000),
			Orders:    30 + s.rng.Intn(80),
			Customers: 25 + s.rng.Intn(60),
		}
	}
	return points, nil
}

// Transactions runs the query engine over the transaction dataset.
func (s *MetricsService) Transactions(ctx context.Context, q ports.TransactionQuery) (*ports.TransactionPage, error) {
	records, err := s.transactions.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	result := query.Run(records, q.Status, q.Search, q.Page, q.Limit)

	return &ports.TransactionPage{
		Transactions: result.Items,
		Pagination: ports.Pagination{
			CurrentPage:  result.CurrentPage,
			TotalPages:   result.TotalPages,
			TotalItems:   result.TotalItems,
			ItemsPerPage: result.ItemsPerPage,
		},
	}, nil
}

// Overview aggregates the analytics page: total revenue and average order
// value from the KPI snapshot, total orders summed over the weekly series,
// plus the product and region breakdowns.
func (s *MetricsService) Overview(ctx context.Context) (*ports.AnalyticsOverview, error) {
	kpis, err := s.metrics.KPIs(ctx)
	if err != nil {
		return nil, err
	}
	week, err := s.metrics.SalesWeek(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.metrics.TopProducts(ctx)
	if err != nil {
		return nil, err
	}
	regions, err := s.metrics.SalesByRegion(ctx)
	if err != nil {
		return nil, err
	}

	totalOrders := 0
	for _, day := range week {
		totalOrders += day.Orders
	}

	return &ports.AnalyticsOverview{
		TotalRevenue:      kpis.TotalSales,
		TotalOrders:       totalOrders,
		AverageOrderValue: kpis.AvgOrderValue,
		TopProducts:       products,
		SalesByRegion:     regions,
	}, nil
}
