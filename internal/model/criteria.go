package model

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	DefaultSortBy    = "createdAt"
	DefaultSortOrder = "desc"
)

// FilterCriteria describes one listings query: optional constraints plus
// sort and paging directives. Nil pointer means "criterion not set".
// The query tags mirror the wire parameter names.
type FilterCriteria struct {
	MinPrice     *float64 `query:"minPrice" json:"minPrice,omitempty"`
	MaxPrice     *float64 `query:"maxPrice" json:"maxPrice,omitempty"`
	MinBedrooms  *int     `query:"minBedrooms" json:"minBedrooms,omitempty"`
	MaxBedrooms  *int     `query:"maxBedrooms" json:"maxBedrooms,omitempty"`
	MinBathrooms *int     `query:"minBathrooms" json:"minBathrooms,omitempty"`
	MaxBathrooms *int     `query:"maxBathrooms" json:"maxBathrooms,omitempty"`
	MinSqft      *int     `query:"minSqft" json:"minSqft,omitempty"`
	MaxSqft      *int     `query:"maxSqft" json:"maxSqft,omitempty"`
	PropertyType string   `query:"propertyType" json:"propertyType,omitempty"`
	Status       string   `query:"status" json:"status,omitempty"`
	IsFeatured   *bool    `query:"isFeatured" json:"isFeatured,omitempty"`
	SearchTerm   string   `query:"searchTerm" json:"searchTerm,omitempty"`
	SortBy       string   `query:"sortBy" json:"sortBy,omitempty"`
	SortOrder    string   `query:"sortOrder" json:"sortOrder,omitempty"`
	Page         int      `query:"page" json:"page,omitempty"`
	PageSize     int      `query:"pageSize" json:"pageSize,omitempty"`
}

// Normalize coerces paging and sort values into their valid ranges.
// Out-of-range values are clamped to defaults, never rejected.
func (c *FilterCriteria) Normalize() {
	if c.Page < 1 {
		c.Page = DefaultPage
	}
	if c.PageSize < 1 || c.PageSize > MaxPageSize {
		c.PageSize = DefaultPageSize
	}
	if c.SortBy == "" {
		c.SortBy = DefaultSortBy
	}
	if c.SortOrder == "" {
		c.SortOrder = DefaultSortOrder
	}
}
