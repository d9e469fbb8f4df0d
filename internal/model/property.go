package model

import "time"

// Property Types
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "House"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeCondo     PropertyType = "Condo"
	PropertyTypeTownhouse PropertyType = "Townhouse"
)

// Property Status
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "Available"
	PropertyStatusPending   PropertyStatus = "Pending"
	PropertyStatusSold      PropertyStatus = "Sold"
)

// DefaultStatus is applied when a draft arrives without a status.
const DefaultStatus = string(PropertyStatusAvailable)

type Property struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Price       float64   `json:"price"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Sqft        int       `json:"sqft"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	ImageURL    string    `json:"imageUrl"`
	ImageURLs   []string  `json:"imageUrls"`
	IsFeatured  bool      `json:"isFeatured"`
	Features    []string  `json:"features"`
	Type        string    `json:"propertyType"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
