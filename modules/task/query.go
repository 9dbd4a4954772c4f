package task

import "strconv"

const (
	// DefaultPerPage matches the page size used when per_page is absent or junk.
	DefaultPerPage = 15

	// DefaultSortBy is the column used when sort_by is absent or not sortable.
	DefaultSortBy = "created_at"

	// DefaultSortOrder is used when sort_order is anything but asc/desc.
	DefaultSortOrder = "desc"
)

// sortableColumns is the allow-list of columns exposed for sorting. Anything
// outside this set falls back to DefaultSortBy rather than reaching the
// database, so client input never ends up in an ORDER BY clause verbatim.
var sortableColumns = map[string]bool{
	"id":         true,
	"title":      true,
	"status":     true,
	"due_date":   true,
	"created_at": true,
	"updated_at": true,
}

// ListQuery describes a bounded, filtered, sorted, paginated view over the
// task collection. Construct it with NewListQuery so the invariants hold.
type ListQuery struct {
	Status    string `json:"status,omitempty"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	PerPage   int    `json:"per_page"`
	Page      int    `json:"page"`
}

// NewListQuery builds a ListQuery from raw query-string values. Every input
// fails closed to its default: an unknown sort column becomes created_at, a
// bad order becomes desc, and non-positive or non-numeric page sizes become
// the defaults. The status filter is passed through verbatim; an unrecognized
// value simply matches no rows.
func NewListQuery(status, sortBy, sortOrder, perPage, page string) ListQuery {
	q := ListQuery{
		Status:    status,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
		PerPage:   DefaultPerPage,
		Page:      1,
	}

	if sortableColumns[sortBy] {
		q.SortBy = sortBy
	}
	if sortOrder == "asc" || sortOrder == "desc" {
		q.SortOrder = sortOrder
	}
	if n, err := strconv.Atoi(perPage); err == nil && n > 0 {
		q.PerPage = n
	}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		q.Page = n
	}
	return q
}

// sanitized re-applies the fail-closed defaults. The list service runs every
// incoming query through it, so a hand-built query that skipped NewListQuery
// still cannot smuggle an arbitrary column into ORDER BY.
func (q ListQuery) sanitized() ListQuery {
	if !sortableColumns[q.SortBy] {
		q.SortBy = DefaultSortBy
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = DefaultSortOrder
	}
	if q.PerPage <= 0 {
		q.PerPage = DefaultPerPage
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return q
}

// Offset returns the row offset for the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// LastPage returns the number of the final page for the given total.
func (q ListQuery) LastPage(total int64) int {
	last := int((total + int64(q.PerPage) - 1) / int64(q.PerPage))
	if last < 1 {
		last = 1
	}
	return last
}
