package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurjotsinghmanak/PropertyListings/internal/model"
	"github.com/gurjotsinghmanak/PropertyListings/internal/query"
	"github.com/gurjotsinghmanak/PropertyListings/internal/repository"
	"github.com/gurjotsinghmanak/PropertyListings/pkg/favorites"
	"github.com/gurjotsinghmanak/PropertyListings/pkg/seed"
)

func writeEnvelope(w http.ResponseWriter, status int, success bool, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": success,
		"data":    data,
		"message": message,
		"errors":  []string{},
	})
}

func parseTestCriteria(r *http.Request) model.FilterCriteria {
	q := r.URL.Query()
	criteria := model.FilterCriteria{
		SortBy:     q.Get("sortBy"),
		SortOrder:  q.Get("sortOrder"),
		SearchTerm: q.Get("searchTerm"),
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		criteria.Page = v
	}
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		criteria.PageSize = v
	}
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		criteria.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		criteria.MaxPrice = &v
	}
	if v, err := strconv.ParseBool(q.Get("isFeatured")); err == nil {
		criteria.IsFeatured = &v
	}
	return criteria
}

// newTestServer serves the real repository and query pipeline over a plain
// mux so the client is exercised against faithful listing semantics.
func newTestServer(t *testing.T, props []model.Property) (*httptest.Server, *repository.InMemory) {
	t.Helper()
	repo := repository.NewInMemory(props)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/listings", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, query.Run(repo.List(), parseTestCriteria(r)), "Listings retrieved successfully")
	})
	mux.HandleFunc("GET /api/listings/search", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, query.Search(repo.List(), parseTestCriteria(r)), "Found listings")
	})
	mux.HandleFunc("GET /api/listings/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		listing, found := repo.GetByID(id)
		if !found {
			writeEnvelope(w, http.StatusNotFound, false, nil, "Listing not found")
			return
		}
		writeEnvelope(w, http.StatusOK, true, listing, "Listing retrieved successfully")
	})
	mux.HandleFunc("POST /api/listings", func(w http.ResponseWriter, r *http.Request) {
		var draft model.Property
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeEnvelope(w, http.StatusBadRequest, false, nil, "Invalid listing data")
			return
		}
		writeEnvelope(w, http.StatusCreated, true, repo.Create(draft), "Listing created successfully")
	})
	mux.HandleFunc("DELETE /api/listings/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		if !repo.Delete(id) {
			writeEnvelope(w, http.StatusNotFound, false, nil, "Listing not found")
			return
		}
		writeEnvelope(w, http.StatusOK, true, nil, "Listing deleted successfully")
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, repo
}

func newTestFavorites(t *testing.T, ids ...int) *favorites.Store {
	t.Helper()
	s := favorites.Open(filepath.Join(t.TempDir(), "favorites.json"))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func TestGetListings(t *testing.T) {
	srv, _ := newTestServer(t, seed.Properties())
	c := New(srv.URL + "/api")

	result, err := c.GetListings(context.Background(), model.FilterCriteria{})
	require.NoError(t, err)
	assert.Len(t, result.Items, 10)
	assert.Equal(t, 12, result.TotalCount)
	assert.True(t, result.HasNextPage)
}

func TestGetListingByID(t *testing.T) {
	srv, _ := newTestServer(t, seed.Properties())
	c := New(srv.URL + "/api")

	listing, err := c.GetListingByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Luxury Waterfront Condo", listing.Title)
}

func TestApplicationErrorKeepsStatusAndMessage(t *testing.T) {
	srv, _ := newTestServer(t, seed.Properties())
	c := New(srv.URL + "/api")

	_, err := c.GetListingByID(context.Background(), 999)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Listing not found", apiErr.Message)
	assert.False(t, IsTimeout(err))
}

func TestConnectionFailureMapsToAPIError(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	base := srv.URL + "/api"
	srv.Close()

	_, err := New(base).GetListings(context.Background(), model.FilterCriteria{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Contains(t, apiErr.Message, "Failed to connect")
}

func TestTimeoutIsDistinguished(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := New(srv.URL + "/api").GetListings(ctx, model.FilterCriteria{})
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestGetFeaturedListings(t *testing.T) {
	srv, _ := newTestServer(t, seed.Properties())
	c := New(srv.URL + "/api")

	featured, err := c.GetFeaturedListings(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, 3, featured[0].ID) // newest featured first
	assert.Equal(t, 2, featured[1].ID)
	assert.Equal(t, 1, featured[2].ID)
}

func TestCreateAndDeleteListing(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	c := New(srv.URL + "/api")

	created, err := c.CreateListing(context.Background(), model.Property{Title: "From Client", Price: 100000})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	require.NoError(t, c.DeleteListing(context.Background(), created.ID))

	err = c.DeleteListing(context.Background(), created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestBrowseWithoutFavoritesIsServerPaginated(t *testing.T) {
	srv, _ := newTestServer(t, seed.Properties())
	c := New(srv.URL + "/api")

	result, err := c.Browse(context.Background(), model.FilterCriteria{PageSize: 6}, newTestFavorites(t), false)
	require.NoError(t, err)
	assert.Len(t, result.Items, 6)
	assert.Equal(t, 2, result.TotalPages)
}

func TestBrowseFavoritesOnly(t *testing.T) {
	srv, _ := newTestServer(t, seed.Properties())
	c := New(srv.URL + "/api")
	favs := newTestFavorites(t, 3, 7)

	result, err := c.Browse(context.Background(),
		model.FilterCriteria{SortBy: "price", SortOrder: "asc"}, favs, true)
	require.NoError(t, err)

	// Exactly the favorited properties, ordered by ascending price
	// regardless of the server's default ordering.
	require.Len(t, result.Items, 2)
	assert.Equal(t, 7, result.Items[0].ID) // $399,000
	assert.Equal(t, 3, result.Items[1].ID) // $1,200,000
	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
}

func TestBrowseFavoritesClampsPageAndReportsIt(t *testing.T) {
	srv, _ := newTestServer(t, seed.Properties())
	c := New(srv.URL + "/api")
	favs := newTestFavorites(t, 3, 7)

	result, err := c.Browse(context.Background(), model.FilterCriteria{Page: 9}, favs, true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page) // corrected page for the caller's URL state
	assert.Len(t, result.Items, 2)
}

func TestBrowseEmptyFavoritesShortCircuits(t *testing.T) {
	// No server at all: an empty favorites set must not issue a fetch.
	c := New("http://127.0.0.1:0/api")

	result, err := c.Browse(context.Background(), model.FilterCriteria{}, newTestFavorites(t), true)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 1, result.TotalPages)
}

func TestBrowseDropsDeletedFavoritesSilently(t *testing.T) {
	srv, repo := newTestServer(t, seed.Properties())
	c := New(srv.URL + "/api")
	favs := newTestFavorites(t, 3, 7)

	repo.Delete(3)

	result, err := c.Browse(context.Background(), model.FilterCriteria{}, favs, true)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 7, result.Items[0].ID)
}
