// ABOUTME: CLI commands for managing categories.
// ABOUTME: Category deletion cascades to the trackers it contains.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create an empty category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := gateway.Categories.Add(args[0]); err != nil {
			return fmt.Errorf("failed to add category: %w", err)
		}
		color.Green("✓ Added category %s", args[0])
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List categories and their tracker counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := gateway.Categories.FetchAll()
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		if len(categories) == 0 {
			fmt.Println("No categories yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, c := range categories {
			fmt.Printf("%s %s\n", c.Title, faint.Sprintf("(%d trackers)", len(c.Trackers)))
		}
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a category and all trackers in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := gateway.Categories.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		fmt.Printf("Deleted category %s\n", args[0])
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
	rootCmd.AddCommand(categoryCmd)
}
