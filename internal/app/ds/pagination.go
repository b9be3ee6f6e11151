package ds

// PaginationInfo is the pagination metadata attached to catalog responses.
type PaginationInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TotalPages returns ceil(total/pageSize), or 0 when either side is empty.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// CatalogFiltersInfo echoes the filters a catalog page was fetched with.
type CatalogFiltersInfo struct {
	PriceMin     int    `json:"price_min"`
	PriceMax     int    `json:"price_max"`
	MembershipID string `json:"membership_id,omitempty"`
	Search       string `json:"search,omitempty"`
	Ordering     string `json:"ordering,omitempty"`
}
