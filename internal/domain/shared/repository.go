package shared

import (
	"context"
	"strings"
)

// Page size bounds for paginated listings
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// PageRequest is a normalized page/limit pair
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps page to >= 1 and limit to [1, MaxPageLimit].
// A zero limit falls back to DefaultPageLimit.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListFilter is the common listing filter shared by the registries.
// Page is nil for the unpaginated variant.
type ListFilter struct {
	Search string
	Page   *PageRequest
}

// SearchTerm returns the trimmed search text
func (f ListFilter) SearchTerm() string {
	return strings.TrimSpace(f.Search)
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageLimit
	}
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Sequencer hands out monotonically increasing values per named counter.
// Implementations must make NextValue atomic across concurrent callers.
type Sequencer interface {
	// NextValue increments the counter and returns the new value.
	// A missing counter starts at floor, so the first value is floor+1.
	NextValue(ctx context.Context, name string, floor int64) (int64, error)
	// Peek returns what NextValue would return without consuming it
	Peek(ctx context.Context, name string, floor int64) (int64, error)
	// EnsureAtLeast raises the counter to value if it is lower
	EnsureAtLeast(ctx context.Context, name string, value int64) error
}
