package service

import (
	"context"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

type stubDataset struct {
	kpis         domain.KPISnapshot
	week         []domain.SalesPoint
	products     []domain.ProductSales
	regions      []domain.RegionSales
	transactions []domain.TransactionRecord
}

func (d *stubDataset) KPIs(_ context.Context) (domain.KPISnapshot, error)       { return d.kpis, nil }
func (d *stubDataset) SalesWeek(_ context.Context) ([]domain.SalesPoint, error) { return d.week, nil }
func (d *stubDataset) TopProducts(_ context.Context) ([]domain.ProductSales, error) {
	return d.products, nil
}
func (d *stubDataset) SalesByRegion(_ context.Context) ([]domain.RegionSales, error) {
	return d.regions, nil
}
func (d *stubDataset) Transactions(_ context.Context) ([]domain.TransactionRecord, error) {
	return d.transactions, nil
}

func newMetricsService(dataset *stubDataset, seed int64) *MetricsService {
	return NewMetricsService(dataset, dataset, rand.New(rand.NewSource(seed)), zerolog.Nop())
}

func testDataset() *stubDataset {
	return &stubDataset{
		kpis: domain.KPISnapshot{TotalSales: 125000, ActiveCustomers: 1247, DailyRevenue: 5430, AvgOrderValue: 156},
		week: []domain.SalesPoint{
			{Date: "2024-01-01", Sales: 12000, Orders: 45, Customers: 38},
			{Date: "2024-01-02", Sales: 15000, Orders: 52, Customers: 41},
			{Date: "2024-01-03", Sales: 13500, Orders: 48, Customers: 39},
		},
		products: []domain.ProductSales{{Name: "Premium Package", Sales: 45, Revenue: 13455}},
		regions:  []domain.RegionSales{{Region: "Europe", Sales: 38000, Percentage: 30.4}},
		transactions: []domain.TransactionRecord{
			{ID: 1, Customer: "John Doe", Status: domain.StatusCompleted, Product: "Premium Package"},
			{ID: 2, Customer: "Jane Smith", Status: domain.StatusPending, Product: "Standard Package"},
		},
	}
}

func TestMetricsService_KPIs_JitterIsSeedable(t *testing.T) {
	now := time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC)

	a, err := newMetricsService(testDataset(), 42).WithClock(func() time.Time { return now }).KPIs(context.Background())
	if err != nil {
		t.Fatalf("kpis failed: %v", err)
	}
	b, err := newMetricsService(testDataset(), 42).WithClock(func() time.Time { return now }).KPIs(context.Background())
	if err != nil {
		t.Fatalf("kpis failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed must yield identical KPIs: %+v vs %+v", a, b)
	}
	if a.DailyRevenue < 5430 || a.DailyRevenue >= 6430 {
		t.Fatalf("daily revenue jitter out of range: %d", a.DailyRevenue)
	}
	if a.ActiveCustomers < 1247 || a.ActiveCustomers >= 1297 {
		t.Fatalf("active customers jitter out of range: %d", a.ActiveCustomers)
	}
	if a.LastUpdated != "2024-01-07T10:00:00Z" {
		t.Fatalf("unexpected lastUpdated: %s", a.LastUpdated)
	}
}

func TestMetricsService_Sales_WeekIsSeededSeries(t *testing.T) {
	dataset := testDataset()
	svc := newMetricsService(dataset, 1)

	got, err := svc.Sales(context.Background(), PeriodWeek)
	if err != nil {
		t.Fatalf("sales failed: %v", err)
	}
	if !reflect.DeepEqual(got, dataset.week) {
		t.Fatalf("7d must return the seeded series untouched")
	}

	// Unknown periods fall back to the week view.
	got, err = svc.Sales(context.Background(), "90d")
	if err != nil {
		t.Fatalf("sales failed: %v", err)
	}
	if !reflect.DeepEqual(got, dataset.week) {
		t.Fatalf("unknown period must fall back to 7d")
	}
}

func TestMetricsService_Sales_MonthSynthesised(t *testing.T) {
	now := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	svc := newMetricsService(testDataset(), 7).WithClock(func() time.Time { return now })

	got, err := svc.Sales(context.Background(), PeriodMonth)
	if err != nil {
		t.Fatalf("sales failed: %v", err)
	}
	if len(got) != 30 {
		t.Fatalf("expected 30 points, got %d", len(got))
	}
	if got[29].Date != "2024-01-31" {
		t.Fatalf("series must end today, got %s", got[29].Date)
	}
	if got[0].Date != "2024-01-02" {
		t.Fatalf("series must start 29 days back, got %s", got[0].Date)
	}
	for i, p := range got {
		if p.Sales < 10000 || p.Sales >= 35000 {
			t.Fatalf("point %d sales out of range: %d", i, p.Sales)
		}
		if p.Orders < 30 || p.Orders >= 110 {
			t.Fatalf("point %d orders out of range: %d", i, p.Orders)
		}
		if p.Customers < 25 || p.Customers >= 85 {
			t.Fatalf("point %d customers out of range: %d", i, p.Customers)
		}
	}
}

func TestMetricsService_Transactions_FiltersAndPaginates(t *testing.T) {
	svc := newMetricsService(testDataset(), 1)

	page, err := svc.Transactions(context.Background(), ports.TransactionQuery{
		Status: "completed", Page: 1, Limit: 10,
	})
	if err != nil {
		t.Fatalf("transactions failed: %v", err)
	}
	if page.Pagination.TotalItems != 1 || len(page.Transactions) != 1 {
		t.Fatalf("expected single completed record, got %+v", page)
	}
	if page.Transactions[0].ID != 1 {
		t.Fatalf("unexpected record: %+v", page.Transactions[0])
	}
}

func TestMetricsService_Overview_Aggregates(t *testing.T) {
	dataset := testDataset()
	svc := newMetricsService(dataset, 1)

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if got.TotalRevenue != 125000 {
		t.Fatalf("totalRevenue must equal KPI totalSales, got %d", got.TotalRevenue)
	}
	if got.TotalOrders != 45+52+48 {
		t.Fatalf("totalOrders must sum the weekly series, got %d", got.TotalOrders)
	}
	if got.AverageOrderValue != 156 {
		t.Fatalf("unexpected averageOrderValue: %d", got.AverageOrderValue)
	}
	if !reflect.DeepEqual(got.TopProducts, dataset.products) || !reflect.DeepEqual(got.SalesByRegion, dataset.regions) {
		t.Fatalf("breakdowns must pass through the dataset")
	}
}
