package client

import (
	"context"

	"github.com/gurjotsinghmanak/PropertyListings/internal/model"
	"github.com/gurjotsinghmanak/PropertyListings/internal/query"
	"github.com/gurjotsinghmanak/PropertyListings/pkg/favorites"
)

// favoritesFetchSize is the oversized page requested when browsing favorites:
// the server knows nothing about the favorites set, so the client pulls one
// large batch and pages through it locally.
const favoritesFetchSize = model.MaxPageSize

// Browse is the query entry point for a browsing UI. Without favoritesOnly it
// is a plain server-paginated fetch. With favoritesOnly it mirrors the server
// pipeline client-side: fetch one large batch already filtered by the other
// criteria, keep only favorited ids, re-sort through the shared query
// pipeline, and paginate with the originally requested page size. A requested
// page past the end is clamped to the last valid page; the returned Page
// reflects the clamp so the caller can correct its displayed page number.
func (c *Client) Browse(ctx context.Context, criteria model.FilterCriteria, favs *favorites.Store, favoritesOnly bool) (model.PaginatedResult, error) {
	criteria.Normalize()

	if !favoritesOnly {
		return c.GetListings(ctx, criteria)
	}

	if favs.Len() == 0 {
		return model.PaginatedResult{
			Items:      []model.Property{},
			Page:       1,
			PageSize:   criteria.PageSize,
			TotalPages: 1,
		}, nil
	}

	fetch := criteria
	fetch.Page = 1
	fetch.PageSize = favoritesFetchSize
	batch, err := c.GetListings(ctx, fetch)
	if err != nil {
		return model.PaginatedResult{}, err
	}

	kept := make([]model.Property, 0, len(batch.Items))
	for _, p := range batch.Items {
		if favs.Contains(p.ID) {
			kept = append(kept, p)
		}
	}

	sorted := query.Sort(kept, criteria.SortBy, criteria.SortOrder)

	totalPages := (len(sorted) + criteria.PageSize - 1) / criteria.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := criteria.Page
	if page > totalPages {
		page = totalPages
	}

	return query.Paginate(sorted, page, criteria.PageSize), nil
}
