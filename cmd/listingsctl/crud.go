package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gurjotsinghmanak/PropertyListings/internal/model"
)

func readDraft(path string) (model.Property, error) {
	var draft model.Property
	data, err := os.ReadFile(path)
	if err != nil {
		return draft, fmt.Errorf("could not read draft file: %w", err)
	}
	if err := json.Unmarshal(data, &draft); err != nil {
		return draft, fmt.Errorf("could not parse draft file: %w", err)
	}
	return draft, nil
}

func newCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing from a JSON draft file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := readDraft(file)
			if err != nil {
				return err
			}
			created, err := api.CreateListing(context.Background(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created listing %d (%s)\n", created.ID, created.Slug)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the JSON draft")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Overwrite a listing from a JSON draft file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			draft, err := readDraft(file)
			if err != nil {
				return err
			}
			updated, err := api.UpdateListing(context.Background(), id, draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated listing %d (%s)\n", updated.ID, updated.Slug)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the JSON draft")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := api.DeleteListing(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted listing %d\n", id)
			return nil
		},
	}
}
