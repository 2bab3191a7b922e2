package ports

import (
	"context"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// TransactionQuery carries the list filters and page window for the
// transactions endpoint.
type TransactionQuery struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// Pagination describes the page window of a TransactionPage.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// TransactionPage is one page of filtered transactions. TotalItems counts
// records after filtering, before slicing.
type TransactionPage struct {
	Transactions []domain.TransactionRecord `json:"transactions"`
	Pagination   Pagination                 `json:"pagination"`
}

// KPIResult is the KPI snapshot enriched with per-request dynamics.
type KPIResult struct {
	domain.KPISnapshot
	LastUpdated string `json:"lastUpdated"`
}

// AnalyticsOverview aggregates revenue, order volume, and the product and
// region breakdowns shown on the analytics page.
type AnalyticsOverview struct {
	TotalRevenue      int                   `json:"totalRevenue"`
	TotalOrders       int                   `json:"totalOrders"`
	AverageOrderValue int                   `json:"averageOrderValue"`
	TopProducts       []domain.ProductSales `json:"topProducts"`
	SalesByRegion     []domain.RegionSales  `json:"salesByRegion"`
}

// MetricsService serves the dashboard read model.
type MetricsService interface {
	KPIs(ctx context.Context) (*KPIResult, error)
	Sales(ctx context.Context, period string) ([]domain.SalesPoint, error)
	Transactions(ctx context.Context, q TransactionQuery) (*TransactionPage, error)
	Overview(ctx context.Context) (*AnalyticsOverview, error)
}
