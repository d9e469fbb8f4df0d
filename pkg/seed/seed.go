package seed

import (
	"log"
	"time"

	"github.com/gosimple/slug"

	"github.com/gurjotsinghmanak/PropertyListings/internal/model"
)

// Properties returns the demo dataset the repository starts with: twelve
// listings, three of them featured, created at staggered times so the
// default newest-first ordering is meaningful.
func Properties() []model.Property {
	now := time.Now().UTC()
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	properties := []model.Property{
		{
			ID:          1,
			Title:       "Modern Downtown Apartment",
			Price:       450000,
			Bedrooms:    2,
			Bathrooms:   2,
			Sqft:        1200,
			Description: "Beautiful modern apartment in the heart of downtown with an open floor plan, high ceilings and a recently renovated kitchen with stainless steel appliances. Building amenities include a fitness center, rooftop terrace and 24-hour concierge.",
			Address:     "123 Main St, Downtown, City",
			Features:    []string{"Hardwood Floors", "Stainless Steel Appliances", "In-unit Laundry", "Central Air", "Fitness Center", "Rooftop Terrace"},
			Type:        string(model.PropertyTypeApartment),
			IsFeatured:  true,
			CreatedAt:   daysAgo(30),
		},
		{
			ID:          2,
			Title:       "Spacious Family Home",
			Price:       750000,
			Bedrooms:    4,
			Bathrooms:   3,
			Sqft:        2800,
			Description: "Perfect for a growing family, this home offers four bedrooms across two levels, an open concept living area with a gourmet kitchen and a fully fenced backyard with covered patio. Located in a highly rated school district.",
			Address:     "456 Oak Ave, Suburbia, City",
			Features:    []string{"Fireplace", "Granite Countertops", "Walk-in Closet", "Fenced Yard", "Attached Garage", "Central Heating"},
			Type:        string(model.PropertyTypeHouse),
			IsFeatured:  true,
			CreatedAt:   daysAgo(25),
		},
		{
			ID:          3,
			Title:       "Luxury Waterfront Condo",
			Price:       1200000,
			Bedrooms:    3,
			Bathrooms:   2,
			Sqft:        1800,
			Description: "Stunning waterfront condo with breathtaking views, floor-to-ceiling windows and a gourmet kitchen with top-of-the-line appliances. Building amenities include a pool, hot tub, fitness center and 24-hour security.",
			Address:     "789 Harbor Blvd, Waterfront, City",
			Features:    []string{"Waterfront View", "Floor-to-ceiling Windows", "Private Balcony", "Pool", "Hot Tub", "24-hour Security"},
			Type:        string(model.PropertyTypeCondo),
			IsFeatured:  true,
			CreatedAt:   daysAgo(20),
		},
		{
			ID:          4,
			Title:       "Charming Craftsman Bungalow",
			Price:       525000,
			Bedrooms:    3,
			Bathrooms:   2,
			Sqft:        1600,
			Description: "Beautifully restored craftsman bungalow with original hardwood floors, built-in bookshelves, original wainscoting and an updated kitchen with modern appliances.",
			Address:     "101 Maple St, Historic District, City",
			Features:    []string{"Original Hardwood", "Vintage Fixtures", "Updated Kitchen", "Front Porch", "Garden", "Built-in Storage"},
			Type:        string(model.PropertyTypeHouse),
			CreatedAt:   daysAgo(15),
		},
		{
			ID:          5,
			Title:       "Contemporary Townhouse",
			Price:       625000,
			Bedrooms:    3,
			Bathrooms:   2,
			Sqft:        1900,
			Description: "Modern townhouse in a gated community with contemporary finishes, a gourmet kitchen with quartz countertops and a private patio. Top-floor master suite with walk-in closet and en-suite bathroom.",
			Address:     "202 Pine Lane, Gated Community, City",
			Features:    []string{"Gated Community", "Modern Finishes", "Open Floor Plan", "Patio", "Two-Car Garage", "Quartz Countertops"},
			Type:        string(model.PropertyTypeTownhouse),
			CreatedAt:   daysAgo(10),
		},
		{
			ID:          6,
			Title:       "Mountain View Retreat",
			Price:       875000,
			Bedrooms:    4,
			Bathrooms:   3,
			Sqft:        3200,
			Description: "Spacious retreat with stunning mountain views, vaulted ceilings and a stone fireplace. Open concept design with a gourmet kitchen and a large deck perfect for entertaining.",
			Address:     "303 Summit Drive, Mountain View, City",
			Features:    []string{"Mountain Views", "Vaulted Ceilings", "Stone Fireplace", "Deck", "Three-Car Garage", "Granite Countertops"},
			Type:        string(model.PropertyTypeHouse),
			CreatedAt:   daysAgo(5),
		},
		{
			ID:          7,
			Title:       "Urban Loft Apartment",
			Price:       399000,
			Bedrooms:    1,
			Bathrooms:   1,
			Sqft:        950,
			Description: "Stylish urban loft in the heart of the arts district with exposed brick walls, high ceilings and large windows. Perfect for young professionals or artists.",
			Address:     "404 Artist Way, Arts District, City",
			Features:    []string{"Exposed Brick", "High Ceilings", "Modern Kitchen", "Arts District", "Hardwood Floors", "Large Windows"},
			Type:        string(model.PropertyTypeApartment),
			CreatedAt:   daysAgo(8),
		},
		{
			ID:          8,
			Title:       "Suburban Ranch Home",
			Price:       550000,
			Bedrooms:    3,
			Bathrooms:   2,
			Sqft:        1750,
			Description: "Well-maintained ranch home in a quiet suburban neighborhood with a spacious living room, fireplace, updated kitchen and a large backyard perfect for families.",
			Address:     "505 Meadow Lane, Pleasant Valley, City",
			Features:    []string{"Ranch Style", "Fireplace", "Updated Kitchen", "Large Backyard", "Quiet Neighborhood", "Two-Car Garage"},
			Type:        string(model.PropertyTypeHouse),
			CreatedAt:   daysAgo(12),
		},
		{
			ID:          9,
			Title:       "Lakefront Cottage",
			Price:       675000,
			Bedrooms:    2,
			Bathrooms:   1,
			Sqft:        1100,
			Description: "Charming lakefront cottage with stunning water views, a cozy living room with stone fireplace and a large deck overlooking the lake. Private dock included.",
			Address:     "606 Lakeshore Drive, Lake Community, City",
			Features:    []string{"Lakefront", "Water Views", "Stone Fireplace", "Deck", "Private Dock", "Cottage Style"},
			Type:        string(model.PropertyTypeHouse),
			CreatedAt:   daysAgo(18),
		},
		{
			ID:          10,
			Title:       "Modern Minimalist Home",
			Price:       825000,
			Bedrooms:    3,
			Bathrooms:   2,
			Sqft:        2200,
			Description: "Sleek modern home with clean lines, floor-to-ceiling windows, an open concept living area and a gourmet kitchen with high-end appliances.",
			Address:     "707 Design Avenue, Modern District, City",
			Features:    []string{"Modern Design", "Floor-to-ceiling Windows", "Open Concept", "Gourmet Kitchen", "Spa Bathroom", "Minimalist"},
			Type:        string(model.PropertyTypeHouse),
			CreatedAt:   daysAgo(6),
		},
		{
			ID:          11,
			Title:       "Historic Victorian Home",
			Price:       950000,
			Bedrooms:    5,
			Bathrooms:   3,
			Sqft:        3500,
			Description: "Beautifully preserved Victorian home with ornate moldings, hardwood floors and a grand staircase. Updated with modern amenities while keeping its historic charm.",
			Address:     "808 Heritage Blvd, Historic District, City",
			Features:    []string{"Victorian Architecture", "Original Details", "Hardwood Floors", "Wraparound Porch", "Historic District", "Mature Landscaping"},
			Type:        string(model.PropertyTypeHouse),
			CreatedAt:   daysAgo(22),
		},
		{
			ID:          12,
			Title:       "Golf Course Property",
			Price:       1100000,
			Bedrooms:    4,
			Bathrooms:   3,
			Sqft:        3800,
			Description: "Luxury home overlooking the 18th hole of the championship golf course, with a grand foyer, gourmet kitchen with butler's pantry and an outdoor kitchen perfect for entertaining.",
			Address:     "909 Fairway Drive, Golf Community, City",
			Features:    []string{"Golf Course Views", "Grand Foyer", "Gourmet Kitchen", "Butler's Pantry", "Outdoor Kitchen", "Luxury Finishes"},
			Type:        string(model.PropertyTypeHouse),
			CreatedAt:   daysAgo(14),
		},
	}

	for i := range properties {
		p := &properties[i]
		p.Slug = slug.Make(p.Title)
		p.Status = model.DefaultStatus
		p.UpdatedAt = p.CreatedAt
		p.ImageURL = "/house-sample.jpg"
		p.ImageURLs = []string{
			"/house-sample.jpg", "/house-sample.jpg", "/house-sample.jpg",
			"/house-sample.jpg", "/house-sample.jpg", "/house-sample.jpg",
		}
	}

	log.Printf("Seeded %d properties", len(properties))
	return properties
}
