package kernel

import (
	"math"

	"labflow/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	// MaxPage bounds the page number so the offset stays far from overflowing.
	MaxPage = 1_000_000
)

// PageRequest is a validated 1-based offset pagination request.
type PageRequest struct {
	page  int
	limit int
}

// NewPageRequest validates 1 <= page <= MaxPage and 1 <= limit <= maxLimit. A
// maxLimit of zero leaves the limit bounded only by what keeps the offset
// representable.
func NewPageRequest(page, limit, maxLimit int) (PageRequest, error) {
	if page < 1 || page > MaxPage {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("page", page, 1, MaxPage)
	}
	if limit < 1 || (maxLimit > 0 && limit > maxLimit) {
		upper := any(maxLimit)
		if maxLimit <= 0 {
			upper = "unbounded"
		}
		return PageRequest{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, upper)
	}
	if page > 1 && limit > math.MaxInt/(page-1) {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, math.MaxInt/(page-1))
	}
	return PageRequest{page: page, limit: limit}, nil
}

// Page is the 1-based page number.
func (p PageRequest) Page() int { return p.page }

// Limit is the maximum number of records on the page.
func (p PageRequest) Limit() int { return p.limit }

// Offset is the number of records to skip: (page-1) * limit.
func (p PageRequest) Offset() int {
	return (p.page - 1) * p.limit
}

// PageInfo describes where a page sits within the full result set.
type PageInfo struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPageInfo derives pagination metadata for req over total matching records.
func NewPageInfo(req PageRequest, total int64) PageInfo {
	totalPages := 0
	if req.limit > 0 {
		totalPages = int((total + int64(req.limit) - 1) / int64(req.limit))
	}
	return PageInfo{
		CurrentPage:     req.page,
		TotalPages:      totalPages,
		TotalItems:      total,
		ItemsPerPage:    req.limit,
		HasNextPage:     req.page < totalPages,
		HasPreviousPage: req.page > 1,
	}
}
