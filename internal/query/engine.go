// Package query is the single filter → sort → paginate pipeline shared by the
// server engine and the client-side favorites mirror. It is pure: no I/O, no
// errors, invalid criteria degrade to defaults instead of failing.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/gurjotsinghmanak/PropertyListings/internal/model"
)

type sortKind int

const (
	numericKey sortKind = iota
	stringKey
	dateKey
)

// sortKey tags a sortable field with the comparison it needs.
type sortKey struct {
	kind sortKind
	num  func(model.Property) float64
	str  func(model.Property) string
	date func(model.Property) time.Time
}

var sortKeys = map[string]sortKey{
	"price":     {kind: numericKey, num: func(p model.Property) float64 { return p.Price }},
	"bedrooms":  {kind: numericKey, num: func(p model.Property) float64 { return float64(p.Bedrooms) }},
	"bathrooms": {kind: numericKey, num: func(p model.Property) float64 { return float64(p.Bathrooms) }},
	"sqft":      {kind: numericKey, num: func(p model.Property) float64 { return float64(p.Sqft) }},
	"title":     {kind: stringKey, str: func(p model.Property) string { return strings.ToLower(p.Title) }},
	"createdAt": {kind: dateKey, date: func(p model.Property) time.Time { return p.CreatedAt }},
}

// keyFor resolves a sort field name, falling back to creation time for
// anything unrecognized.
func keyFor(name string) sortKey {
	if k, ok := sortKeys[name]; ok {
		return k
	}
	return sortKeys["createdAt"]
}

func (k sortKey) compare(a, b model.Property) int {
	switch k.kind {
	case numericKey:
		av, bv := k.num(a), k.num(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case stringKey:
		return strings.Compare(k.str(a), k.str(b))
	default:
		av, bv := k.date(a), k.date(b)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	}
}

// Filter returns the properties matching every set criterion. Criteria
// compose as AND; only the free-text search matches across several fields.
func Filter(in []model.Property, c model.FilterCriteria) []model.Property {
	out := make([]model.Property, 0, len(in))
	for _, p := range in {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p model.Property, c model.FilterCriteria) bool {
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.MinBedrooms != nil && p.Bedrooms < *c.MinBedrooms {
		return false
	}
	if c.MaxBedrooms != nil && p.Bedrooms > *c.MaxBedrooms {
		return false
	}
	if c.MinBathrooms != nil && p.Bathrooms < *c.MinBathrooms {
		return false
	}
	if c.MaxBathrooms != nil && p.Bathrooms > *c.MaxBathrooms {
		return false
	}
	if c.MinSqft != nil && p.Sqft < *c.MinSqft {
		return false
	}
	if c.MaxSqft != nil && p.Sqft > *c.MaxSqft {
		return false
	}
	if c.PropertyType != "" && !strings.EqualFold(p.Type, c.PropertyType) {
		return false
	}
	if c.Status != "" && !strings.EqualFold(p.Status, c.Status) {
		return false
	}
	if c.IsFeatured != nil && p.IsFeatured != *c.IsFeatured {
		return false
	}
	if c.SearchTerm != "" && !matchesSearch(p, c.SearchTerm) {
		return false
	}
	return true
}

func matchesSearch(p model.Property, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Address), term)
}

// Sort returns a sorted copy of in. "asc" sorts ascending; any other order
// value sorts descending. The sort is stable, so ties keep their prior
// relative order.
func Sort(in []model.Property, sortBy, sortOrder string) []model.Property {
	out := make([]model.Property, len(in))
	copy(out, in)

	key := keyFor(sortBy)
	asc := sortOrder == "asc"
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return key.compare(out[i], out[j]) < 0
		}
		return key.compare(out[j], out[i]) < 0
	})
	return out
}

// Paginate slices one page out of an already filtered and sorted sequence.
// TotalPages is floored at one so an empty result reads "page 1 of 1"; the
// requested page is NOT clamped, a page past the end just has no items.
func Paginate(in []model.Property, page, pageSize int) model.PaginatedResult {
	total := len(in)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return model.PaginatedResult{
		Items:           in[start:end],
		TotalCount:      total,
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// Run applies the full pipeline and returns one page.
func Run(in []model.Property, c model.FilterCriteria) model.PaginatedResult {
	c.Normalize()
	matched := Sort(Filter(in, c), c.SortBy, c.SortOrder)
	return Paginate(matched, c.Page, c.PageSize)
}

// Search applies filter and sort but skips pagination, returning the entire
// matching sequence.
func Search(in []model.Property, c model.FilterCriteria) []model.Property {
	c.Normalize()
	return Sort(Filter(in, c), c.SortBy, c.SortOrder)
}
