package pagination

// Defaults and bounds for offset pagination across all list endpoints.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is the pagination envelope returned alongside every list response.
type Page struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	Limit        int   `json:"limit"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

// Clamp normalizes a requested page/limit pair. Page is 1-based.
func Clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Offset converts a 1-based page and limit into a SQL OFFSET.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// NewPage builds the envelope from a total row count.
func NewPage(page, limit int, totalRecords int64) Page {
	totalPages := int((totalRecords + int64(limit) - 1) / int64(limit))
	return Page{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		Limit:        limit,
		HasNext:      page < totalPages,
		HasPrev:      page > 1 && totalRecords > 0,
	}
}
