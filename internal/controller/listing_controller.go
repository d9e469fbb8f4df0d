package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gurjotsinghmanak/PropertyListings/internal/model"
	"github.com/gurjotsinghmanak/PropertyListings/internal/query"
	"github.com/gurjotsinghmanak/PropertyListings/internal/repository"
)

var repo repository.PropertyRepository

// InitListingController wires the repository the handlers operate on.
func InitListingController(r repository.PropertyRepository) {
	repo = r
}

// ListingInput is the draft body accepted by create and update. Identifier,
// slug and timestamps are server-assigned and ignored if present.
type ListingInput struct {
	Title        string   `json:"title"`
	Price        float64  `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Sqft         int      `json:"sqft"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	ImageURL     string   `json:"imageUrl"`
	ImageURLs    []string `json:"imageUrls"`
	IsFeatured   bool     `json:"isFeatured"`
	Features     []string `json:"features"`
	PropertyType string   `json:"propertyType"`
	Status       string   `json:"status"`
}

func (in *ListingInput) toProperty() model.Property {
	status := in.Status
	if status == "" {
		status = model.DefaultStatus
	}
	return model.Property{
		Title:       in.Title,
		Price:       in.Price,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		Sqft:        in.Sqft,
		Description: in.Description,
		Address:     in.Address,
		ImageURL:    in.ImageURL,
		ImageURLs:   in.ImageURLs,
		IsFeatured:  in.IsFeatured,
		Features:    in.Features,
		Type:        in.PropertyType,
		Status:      status,
	}
}

func ok(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(model.Response{
		Success: true,
		Data:    data,
		Message: message,
		Errors:  []string{},
	})
}

func fail(c *fiber.Ctx, status int, message string, errs ...string) error {
	if errs == nil {
		errs = []string{}
	}
	return c.Status(status).JSON(model.Response{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// parseCriteria reads filter parameters from the query string. Malformed
// values degrade to an unfiltered query rather than failing the request.
func parseCriteria(c *fiber.Ctx) model.FilterCriteria {
	criteria := model.FilterCriteria{}
	if err := c.QueryParser(&criteria); err != nil {
		criteria = model.FilterCriteria{}
	}
	return criteria
}

// GetListings returns one page of listings matching the query parameters.
func GetListings(c *fiber.Ctx) error {
	criteria := parseCriteria(c)
	result := query.Run(repo.List(), criteria)
	return ok(c, fiber.StatusOK, result, "Listings retrieved successfully")
}

// GetListing returns a single listing by id.
func GetListing(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "Invalid listing ID",
			"Listing ID must be greater than 0")
	}

	listing, found := repo.GetByID(id)
	if !found {
		return fail(c, fiber.StatusNotFound, "Listing not found",
			fmt.Sprintf("No listing found with ID %d", id))
	}
	return ok(c, fiber.StatusOK, listing, "Listing retrieved successfully")
}

// SearchListings runs filter and sort but returns the entire matching set
// unpaginated.
func SearchListings(c *fiber.Ctx) error {
	criteria := parseCriteria(c)
	listings := query.Search(repo.List(), criteria)
	return ok(c, fiber.StatusOK, listings,
		fmt.Sprintf("Found %d listings matching your criteria", len(listings)))
}

// CreateListing creates a listing from a draft body.
func CreateListing(c *fiber.Ctx) error {
	input := new(ListingInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid listing data", err.Error())
	}

	created := repo.Create(input.toProperty())
	return ok(c, fiber.StatusCreated, created, "Listing created successfully")
}

// UpdateListing overwrites every mutable field of an existing listing.
func UpdateListing(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "Invalid listing ID",
			"Listing ID must be greater than 0")
	}

	input := new(ListingInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid listing data", err.Error())
	}

	updated, found := repo.Update(id, input.toProperty())
	if !found {
		return fail(c, fiber.StatusNotFound, "Listing not found",
			fmt.Sprintf("No listing found with ID %d", id))
	}
	return ok(c, fiber.StatusOK, updated, "Listing updated successfully")
}

// DeleteListing removes a listing.
func DeleteListing(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "Invalid listing ID",
			"Listing ID must be greater than 0")
	}

	if !repo.Delete(id) {
		return fail(c, fiber.StatusNotFound, "Listing not found",
			fmt.Sprintf("No listing found with ID %d", id))
	}
	return ok(c, fiber.StatusOK, nil, "Listing deleted successfully")
}
