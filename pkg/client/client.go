// Package client is the Go client for the property listings API. Every call
// carries a fixed timeout and maps failures into a single APIError taxonomy:
// application errors keep their HTTP status, timeouts and connection failures
// are reported with status 0. No call is ever retried; retry is up to the
// caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gurjotsinghmanak/PropertyListings/internal/model"
)

const requestTimeout = 10 * time.Second

// APIError carries the status, message and detail strings of a failed call.
// Status 0 means the request never produced a response.
type APIError struct {
	Status  int
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsTimeout reports whether err is the distinguished timeout error.
func IsTimeout(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 0 && apiErr.Message == timeoutMessage
}

const (
	timeoutMessage = "Request timed out. Please try again."
	connectMessage = "Failed to connect to API server. Please check your connection and try again."
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// envelope mirrors the server's uniform response shape with the payload left
// undecoded until the caller names its type.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body, out interface{}) error {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("Could not encode request body: %v", err)}
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("Could not build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return &APIError{Message: timeoutMessage}
		}
		return &APIError{Message: connectMessage}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "Invalid response from API server"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := env.Message
		if message == "" {
			message = "An error occurred"
		}
		return &APIError{Status: resp.StatusCode, Message: message, Errors: env.Errors}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Status: resp.StatusCode, Message: "Invalid response from API server"}
		}
	}
	return nil
}

// criteriaParams builds query parameters, sending only the criteria that are
// actually set.
func criteriaParams(criteria model.FilterCriteria) url.Values {
	params := url.Values{}
	setFloat := func(key string, v *float64) {
		if v != nil {
			params.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}
	setInt := func(key string, v *int) {
		if v != nil {
			params.Set(key, strconv.Itoa(*v))
		}
	}

	setFloat("minPrice", criteria.MinPrice)
	setFloat("maxPrice", criteria.MaxPrice)
	setInt("minBedrooms", criteria.MinBedrooms)
	setInt("maxBedrooms", criteria.MaxBedrooms)
	setInt("minBathrooms", criteria.MinBathrooms)
	setInt("maxBathrooms", criteria.MaxBathrooms)
	setInt("minSqft", criteria.MinSqft)
	setInt("maxSqft", criteria.MaxSqft)
	if criteria.PropertyType != "" {
		params.Set("propertyType", criteria.PropertyType)
	}
	if criteria.Status != "" {
		params.Set("status", criteria.Status)
	}
	if criteria.IsFeatured != nil {
		params.Set("isFeatured", strconv.FormatBool(*criteria.IsFeatured))
	}
	if criteria.SearchTerm != "" {
		params.Set("searchTerm", criteria.SearchTerm)
	}
	if criteria.SortBy != "" {
		params.Set("sortBy", criteria.SortBy)
	}
	if criteria.SortOrder != "" {
		params.Set("sortOrder", criteria.SortOrder)
	}
	if criteria.Page > 0 {
		params.Set("page", strconv.Itoa(criteria.Page))
	}
	if criteria.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(criteria.PageSize))
	}
	return params
}

// GetListings fetches one page of listings.
func (c *Client) GetListings(ctx context.Context, criteria model.FilterCriteria) (model.PaginatedResult, error) {
	var result model.PaginatedResult
	err := c.do(ctx, http.MethodGet, "/listings", criteriaParams(criteria), nil, &result)
	return result, err
}

// GetListingByID fetches a single listing.
func (c *Client) GetListingByID(ctx context.Context, id int) (model.Property, error) {
	var listing model.Property
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/listings/%d", id), nil, nil, &listing)
	return listing, err
}

// SearchListings returns the entire matching set, unpaginated.
func (c *Client) SearchListings(ctx context.Context, criteria model.FilterCriteria) ([]model.Property, error) {
	var listings []model.Property
	err := c.do(ctx, http.MethodGet, "/listings/search", criteriaParams(criteria), nil, &listings)
	return listings, err
}

// GetFeaturedListings returns the featured subset, newest first.
func (c *Client) GetFeaturedListings(ctx context.Context) ([]model.Property, error) {
	featured := true
	return c.SearchListings(ctx, model.FilterCriteria{
		IsFeatured: &featured,
		SortBy:     model.DefaultSortBy,
		SortOrder:  model.DefaultSortOrder,
	})
}

// CreateListing submits a draft; id, slug and timestamps in the draft are
// ignored by the server.
func (c *Client) CreateListing(ctx context.Context, draft model.Property) (model.Property, error) {
	var created model.Property
	err := c.do(ctx, http.MethodPost, "/listings", nil, draft, &created)
	return created, err
}

// UpdateListing overwrites every mutable field of listing id.
func (c *Client) UpdateListing(ctx context.Context, id int, draft model.Property) (model.Property, error) {
	var updated model.Property
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/listings/%d", id), nil, draft, &updated)
	return updated, err
}

// DeleteListing removes listing id.
func (c *Client) DeleteListing(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/listings/%d", id), nil, nil, nil)
}
