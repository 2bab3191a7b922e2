// Package query implements the pure read-side engine behind the transactions
// endpoint: status and search filters composed conjunctively, then 1-based
// pagination. Every function is a pure function of its inputs; records are
// never mutated.
package query

import (
	"strings"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// DefaultLimit is the page size used when the caller supplies none.
const DefaultLimit = 10

// PageResult is one page sliced out of a filtered record sequence.
// TotalItems always counts the filtered set, not the page.
type PageResult struct {
	Items        []domain.TransactionRecord
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// FilterStatus keeps records whose status equals the requested value.
// The sentinel "all" (and the empty string) means no filter, not a literal
// status to match.
func FilterStatus(records []domain.TransactionRecord, status string) []domain.TransactionRecord {
	if status == "" || status == domain.StatusAll {
		return records
	}
	out := make([]domain.TransactionRecord, 0, len(records))
	for _, r := range records {
		if string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out
}

// FilterSearch keeps records whose customer or product contains term,
// case-insensitively. An empty term keeps everything.
func FilterSearch(records []domain.TransactionRecord, term string) []domain.TransactionRecord {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)
	out := make([]domain.TransactionRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Customer), needle) ||
			strings.Contains(strings.ToLower(r.Product), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Paginate slices records into the requested 1-based page. Out-of-range
// pages yield an empty item list rather than an error; page and limit are
// clamped to sane minimums first.
func Paginate(records []domain.TransactionRecord, page, limit int) PageResult {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(records)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return PageResult{
		Items:        records[start:end],
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

// Run applies the status filter, then the search filter, then pagination.
func Run(records []domain.TransactionRecord, status, search string, page, limit int) PageResult {
	filtered := FilterSearch(FilterStatus(records, status), search)
	return Paginate(filtered, page, limit)
}
