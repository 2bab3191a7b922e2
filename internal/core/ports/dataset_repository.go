package ports

import (
	"context"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// TransactionRepository exposes the read-only transaction dataset.
type TransactionRepository interface {
	Transactions(ctx context.Context) ([]domain.TransactionRecord, error)
}

// MetricsRepository exposes the pre-aggregated dashboard figures.
type MetricsRepository interface {
	KPIs(ctx context.Context) (domain.KPISnapshot, error)
	SalesWeek(ctx context.Context) ([]domain.SalesPoint, error)
	TopProducts(ctx context.Context) ([]domain.ProductSales, error)
	SalesByRegion(ctx context.Context) ([]domain.RegionSales, error)
}
