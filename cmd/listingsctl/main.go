// listingsctl is the command line front end for the property listings API:
// browse and search listings, inspect one listing, manage the locally
// persisted favorites set, and create/update/delete listings.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gurjotsinghmanak/PropertyListings/pkg/client"
	"github.com/gurjotsinghmanak/PropertyListings/pkg/config"
	"github.com/gurjotsinghmanak/PropertyListings/pkg/favorites"
)

var (
	apiBase string
	api     *client.Client
	favs    *favorites.Store
)

func main() {
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "listingsctl",
		Short:         "Browse and manage property listings",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			api = client.New(apiBase)

			path, err := favorites.DefaultPath()
			if err != nil {
				log.Printf("Could not resolve favorites path: %v", err)
				path = "property-favorites.json"
			}
			favs = favorites.Open(path)
		},
	}
	root.PersistentFlags().StringVar(&apiBase, "api", cfg.Client.BaseURL, "base URL of the listings API")

	root.AddCommand(
		newBrowseCmd(),
		newSearchCmd(),
		newShowCmd(),
		newFeaturedCmd(),
		newFavCmd(),
		newCreateCmd(),
		newUpdateCmd(),
		newDeleteCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one listing in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			listing, err := api.GetListingByID(context.Background(), id)
			if err != nil {
				return err
			}
			printListing(listing, favs.Contains(listing.ID))
			return nil
		},
	}
}

func newFeaturedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List the featured listings, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := api.GetFeaturedListings(context.Background())
			if err != nil {
				return err
			}
			printListingTable(cmd.OutOrStdout(), listings, favs)
			return nil
		},
	}
}

func newFavCmd() *cobra.Command {
	fav := &cobra.Command{
		Use:   "fav",
		Short: "Manage the local favorites set",
	}

	fav.AddCommand(&cobra.Command{
		Use:   "add <id>",
		Short: "Add a listing to favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			favs.Add(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Listing %d added to favorites\n", id)
			return nil
		},
	})

	fav.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a listing from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			favs.Remove(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Listing %d removed from favorites\n", id)
			return nil
		},
	})

	fav.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a listing's favorite state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if favs.Toggle(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "Listing %d added to favorites\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Listing %d removed from favorites\n", id)
			}
			return nil
		},
	})

	fav.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the favorited listing ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := favs.IDs()
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites saved")
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	})

	return fav
}
