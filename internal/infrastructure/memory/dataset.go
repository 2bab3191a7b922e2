package memory

import (
	"context"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// Dataset is the read-only dashboard dataset: transactions, the weekly
// sales series, KPI figures, and the analytics breakdowns. It implements
// both ports.TransactionRepository and ports.MetricsRepository.
//
// The collections are never mutated after construction, so reads need no
// locking; accessors return copies of the slices to keep it that way.
type Dataset struct {
	kpis         domain.KPISnapshot
	week         []domain.SalesPoint
	products     []domain.ProductSales
	regions      []domain.RegionSales
	transactions []domain.TransactionRecord
}

// NewSeededDataset returns the default dataset fixtures.
func NewSeededDataset() *Dataset {
	return &Dataset{
		kpis: domain.KPISnapshot{
			TotalSales:        125000,
			ActiveCustomers:   1247,
			DailyRevenue:      5430,
			MonthlyGrowth:     12.5,
			ConversionRate:    2.4,
			AvgOrderValue:     156,
			CustomerRetention: 78,
		},
		week: []domain.SalesPoint{
			{Date: "2024-01-01", Sales: 12000, Orders: 45, Customers: 38},
			{Date: "2024-01-02", Sales: 15000, Orders: 52, Customers: 41},
			{Date: "2024-01-03", Sales: 13500, Orders: 48, Customers: 39},
			{Date: "2024-01-04", Sales: 18000, Orders: 61, Customers: 52},
			{Date: "2024-01-05", Sales: 16500, Orders: 55, Customers: 47},
			{Date: "2024-01-06", Sales: 21000, Orders: 68, Customers: 58},
			{Date: "2024-01-07", Sales: 19500, Orders: 63, Customers: 54},
		},
		products: []domain.ProductSales{
			{Name: "Premium Package", Sales: 45, Revenue: 13455},
			{Name: "Standard Package", Sales: 78, Revenue: 12168},
			{Name: "Basic Package", Sales: 123, Revenue: 10947},
			{Name: "Enterprise Package", Sales: 23, Revenue: 9936},
		},
		regions: []domain.RegionSales{
			{Region: "North America", Sales: 45000, Percentage: 36},
			{Region: "Europe", Sales: 38000, Percentage: 30.4},
			{Region: "Asia Pacific", Sales: 28000, Percentage: 22.4},
			{Region: "Other", Sales: 14000, Percentage: 11.2},
		},
		transactions: []domain.TransactionRecord{
			{ID: 1, Customer: "John Doe", Amount: 299, Date: "2024-01-07", Status: domain.StatusCompleted, Product: "Premium Package", PaymentMethod: "Credit Card"},
			{ID: 2, Customer: "Jane Smith", Amount: 156, Date: "2024-01-07", Status: domain.StatusCompleted, Product: "Standard Package", PaymentMethod: "PayPal"},
			{ID: 3, Customer: "Bob Johnson", Amount: 89, Date: "2024-01-06", Status: domain.StatusPending, Product: "Basic Package", PaymentMethod: "Credit Card"},
			{ID: 4, Customer: "Alice Brown", Amount: 432, Date: "2024-01-06", Status: domain.StatusCompleted, Product: "Enterprise Package", PaymentMethod: "Bank Transfer"},
			{ID: 5, Customer: "Charlie Wilson", Amount: 178, Date: "2024-01-05", Status: domain.StatusCompleted, Product: "Standard Package", PaymentMethod: "Credit Card"},
		},
	}
}

func (d *Dataset) KPIs(_ context.Context) (domain.KPISnapshot, error) {
	return d.kpis, nil
}

func (d *Dataset) SalesWeek(_ context.Context) ([]domain.SalesPoint, error) {
	out := make([]domain.SalesPoint, len(d.week))
	copy(out, d.week)
	return out, nil
}

func (d *Dataset) TopProducts(_ context.Context) ([]domain.ProductSales, error) {
	out := make([]domain.ProductSales, len(d.products))
	copy(out, d.products)
	return out, nil
}

func (d *Dataset) SalesByRegion(_ context.Context) ([]domain.RegionSales, error) {
	out := make([]domain.RegionSales, len(d.regions))
	copy(out, d.regions)
	return out, nil
}

func (d *Dataset) Transactions(_ context.Context) ([]domain.TransactionRecord, error) {
	out := make([]domain.TransactionRecord, len(d.transactions))
	copy(out, d.transactions)
	return out, nil
}
