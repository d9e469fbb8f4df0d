package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gurjotsinghmanak/PropertyListings/internal/model"
	"github.com/gurjotsinghmanak/PropertyListings/pkg/favorites"
)

// browseFlags collects the filter flags shared by browse and search. Min/max
// flags only become criteria when the user actually set them, so unset flags
// leave the server's defaults alone.
type browseFlags struct {
	minPrice, maxPrice         float64
	minBedrooms, maxBedrooms   int
	minBathrooms, maxBathrooms int
	minSqft, maxSqft           int
	propertyType, status       string
	featured                   bool
	sortBy, sortOrder          string
}

func (f *browseFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64Var(&f.minPrice, "min-price", 0, "minimum price")
	flags.Float64Var(&f.maxPrice, "max-price", 0, "maximum price")
	flags.IntVar(&f.minBedrooms, "min-bedrooms", 0, "minimum bedrooms")
	flags.IntVar(&f.maxBedrooms, "max-bedrooms", 0, "maximum bedrooms")
	flags.IntVar(&f.minBathrooms, "min-bathrooms", 0, "minimum bathrooms")
	flags.IntVar(&f.maxBathrooms, "max-bathrooms", 0, "maximum bathrooms")
	flags.IntVar(&f.minSqft, "min-sqft", 0, "minimum square footage")
	flags.IntVar(&f.maxSqft, "max-sqft", 0, "maximum square footage")
	flags.StringVar(&f.propertyType, "type", "", "property type (House, Condo, Apartment, Townhouse)")
	flags.StringVar(&f.status, "status", "", "listing status")
	flags.BoolVar(&f.featured, "featured", false, "featured listings only")
	flags.StringVar(&f.sortBy, "sort", model.DefaultSortBy, "sort field (price, bedrooms, bathrooms, sqft, title, createdAt)")
	flags.StringVar(&f.sortOrder, "order", model.DefaultSortOrder, "sort order (asc, desc)")
}

func (f *browseFlags) criteria(cmd *cobra.Command) model.FilterCriteria {
	criteria := model.FilterCriteria{
		PropertyType: f.propertyType,
		Status:       f.status,
		SortBy:       f.sortBy,
		SortOrder:    f.sortOrder,
	}

	set := cmd.Flags().Changed
	if set("min-price") {
		criteria.MinPrice = &f.minPrice
	}
	if set("max-price") {
		criteria.MaxPrice = &f.maxPrice
	}
	if set("min-bedrooms") {
		criteria.MinBedrooms = &f.minBedrooms
	}
	if set("max-bedrooms") {
		criteria.MaxBedrooms = &f.maxBedrooms
	}
	if set("min-bathrooms") {
		criteria.MinBathrooms = &f.minBathrooms
	}
	if set("max-bathrooms") {
		criteria.MaxBathrooms = &f.maxBathrooms
	}
	if set("min-sqft") {
		criteria.MinSqft = &f.minSqft
	}
	if set("max-sqft") {
		criteria.MaxSqft = &f.maxSqft
	}
	if set("featured") {
		criteria.IsFeatured = &f.featured
	}
	return criteria
}

func newBrowseCmd() *cobra.Command {
	var (
		flags         browseFlags
		page          int
		pageSize      int
		favoritesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse listings page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := flags.criteria(cmd)
			criteria.Page = page
			criteria.PageSize = pageSize

			result, err := api.Browse(context.Background(), criteria, favs, favoritesOnly)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Items) == 0 {
				if favoritesOnly {
					fmt.Fprintln(out, "No favorite properties. Browse listings and use 'fav add' to save some.")
				} else {
					fmt.Fprintln(out, "No properties found. Try adjusting your filters.")
				}
				return nil
			}

			printListingTable(out, result.Items, favs)
			fmt.Fprintf(out, "\nPage %d of %d (%d properties)\n", result.Page, result.TotalPages, result.TotalCount)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", model.DefaultPageSize, "listings per page")
	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "only show favorited listings")
	return cmd
}

func newSearchCmd() *cobra.Command {
	var flags browseFlags

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search listings by title, description or address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := flags.criteria(cmd)
			criteria.SearchTerm = args[0]

			listings, err := api.SearchListings(context.Background(), criteria)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(listings) == 0 {
				fmt.Fprintln(out, "No properties found.")
				return nil
			}
			printListingTable(out, listings, favs)
			fmt.Fprintf(out, "\n%d properties found\n", len(listings))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid listing id %q", arg)
	}
	return id, nil
}

func printListingTable(out io.Writer, listings []model.Property, favs *favorites.Store) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRICE\tBD\tBA\tSQFT\tTYPE\tSTATUS\tFAV")
	for _, p := range listings {
		fav := ""
		if favs.Contains(p.ID) {
			fav = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t$%.0f\t%d\t%d\t%d\t%s\t%s\t%s\n",
			p.ID, p.Title, p.Price, p.Bedrooms, p.Bathrooms, p.Sqft, p.Type, p.Status, fav)
	}
	w.Flush()
}

func printListing(p model.Property, favorited bool) {
	fmt.Printf("#%d %s", p.ID, p.Title)
	if p.IsFeatured {
		fmt.Print("  [featured]")
	}
	if favorited {
		fmt.Print("  [favorite]")
	}
	fmt.Println()
	fmt.Printf("%s | %s\n", p.Type, p.Status)
	fmt.Printf("$%.0f  %d bd  %d ba  %d sqft\n", p.Price, p.Bedrooms, p.Bathrooms, p.Sqft)
	fmt.Printf("%s\n\n%s\n", p.Address, p.Description)
	if len(p.Features) > 0 {
		fmt.Printf("\nFeatures: %s\n", strings.Join(p.Features, ", "))
	}
	fmt.Printf("\nListed %s, updated %s\n", p.CreatedAt.Format("2006-01-02"), p.UpdatedAt.Format("2006-01-02"))
}
