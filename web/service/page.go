package service

import (
	"fmt"
	"strings"
)

// Paging defaults, mirrored by the query-parameter defaults at the
// controller layer.
const (
	DefaultPageSize = 10
	defaultSortBy   = "id"
)

// PageRequest describes a zero-indexed page of a sorted collection.
type PageRequest struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// Normalize clamps paging values and validates the sort field against the
// allow-list. Unknown fields fall back to the id column and never reach the
// query builder.
func (p PageRequest) Normalize(sortable map[string]bool) PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if !sortable[p.SortBy] {
		p.SortBy = defaultSortBy
	}
	if strings.EqualFold(p.SortDir, "desc") {
		p.SortDir = "desc"
	} else {
		p.SortDir = "asc"
	}
	return p
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Order returns the ORDER BY clause. Equal sort keys are tie-broken by id
// so repeated calls see the same sequence.
func (p PageRequest) Order() string {
	if p.SortBy == defaultSortBy {
		return defaultSortBy + " " + p.SortDir
	}
	return fmt.Sprintf("%s %s, id ASC", p.SortBy, p.SortDir)
}

func totalPages(total int64, size int) int {
	return int((total + int64(size) - 1) / int64(size))
}

// isLastPage is true on the final page and on an empty collection.
func isLastPage(page int, total int64, size int) bool {
	return page >= totalPages(total, size)-1
}
