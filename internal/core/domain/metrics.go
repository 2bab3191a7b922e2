package domain

// TransactionStatus represents the settlement state of a transaction.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// StatusAll is the sentinel filter value meaning "no status filter". It is
// never a stored status.
const StatusAll = "all"

// TransactionRecord is a single sale as shown in the dashboard table.
// Records are read-only: the query engine filters and pages over them but
// never mutates them.
type TransactionRecord struct {
	ID            int               `json:"id"`
	Customer      string            `json:"customer"`
	Amount        float64           `json:"amount"`
	Date          string            `json:"date"`
	Status        TransactionStatus `json:"status"`
	Product       string            `json:"product"`
	PaymentMethod string            `json:"paymentMethod"`
}

// SalesPoint is one day of aggregated sales activity.
type SalesPoint struct {
	Date      string `json:"date"`
	Sales     int    `json:"sales"`
	Orders    int    `json:"orders"`
	Customers int    `json:"customers"`
}

// KPISnapshot carries the headline dashboard figures.
type KPISnapshot struct {
	TotalSales        int     `json:"totalSales"`
	ActiveCustomers   int     `json:"activeCustomers"`
	DailyRevenue      int     `json:"dailyRevenue"`
	MonthlyGrowth     float64 `json:"monthlyGrowth"`
	ConversionRate    float64 `json:"conversionRate"`
	AvgOrderValue     int     `json:"avgOrderValue"`
	CustomerRetention int     `json:"customerRetention"`
}

// ProductSales aggregates sales volume and revenue for one product.
type ProductSales struct {
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue int    `json:"revenue"`
}

// RegionSales aggregates revenue by geographic region.
type RegionSales struct {
	Region     string  `json:"region"`
	Sales      int     `json:"sales"`
	Percentage float64 `json:"percentage"`
}
