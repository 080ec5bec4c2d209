package cli

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	// MaxLimit is the largest page size the platform accepts.
	MaxLimit = 1000
	// DefaultLimit is used when no --limit is given.
	DefaultLimit = 100
)

// ClampLimit bounds the requested page size to (0, MaxLimit].
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// OffsetForPage returns the first item of a 1-based page.
func OffsetForPage(page, limit int) int {
	if page > 1 {
		return limit * (page - 1)
	}
	return 0
}

// PageQuery returns the offset/limit query parameters of a list request.
// offset is only sent when a page was requested; page 0 leaves the window
// to the server.
func PageQuery(page, limit int) url.Values {
	limit = ClampLimit(limit)
	q := url.Values{}
	if page > 0 {
		q.Set("offset", strconv.Itoa(OffsetForPage(page, limit)))
	}
	q.Set("limit", strconv.Itoa(limit))
	return q
}

// Page describes the window a list response covers.
type Page struct {
	Offset int
	Limit  int
	Total  int
}

// Number is the 1-based page being displayed.
func (p Page) Number() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}

// TotalPages is floor(total/limit)+1.
func (p Page) TotalPages() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Total/p.Limit + 1
}

// Paginated reports whether the server holds more items than one page.
func (p Page) Paginated() bool {
	return p.Limit > 0 && p.Total > p.Limit
}

// Banner is the line printed above a paginated table.
func (p Page) Banner() string {
	return fmt.Sprintf("Displaying Page %d of %d", p.Number(), p.TotalPages())
}

// RowIndex returns the displayed index of the local (0-based) row. When a
// page was requested the index reflects the global position.
func RowIndex(page, pageLimit, local int) int {
	if page > 0 {
		return (page-1)*pageLimit + local + 1
	}
	return local + 1
}
