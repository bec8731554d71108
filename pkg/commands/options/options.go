// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// UserOptions selects which profile's notes a command reads.
type UserOptions struct {
	User string
}

// AddUserArgs wires the profile selection flag on the provided command.
func AddUserArgs(cmd *cobra.Command, o *UserOptions) {
	cmd.Flags().StringVarP(&o.User, "user", "u", "",
		"Profile id to load (see: chairside users).")
}

// FilterOptions narrows a note listing.
type FilterOptions struct {
	Query string
	Since string
	Body  bool
}

// AddFilterArgs wires listing filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Narrow the listing with a free-text search.")
	cmd.Flags().StringVar(&o.Since, "since", "",
		"Only notes updated within a window, e.g. 36h, 2d, 1w.")
	cmd.Flags().BoolVar(&o.Body, "body", false,
		"Print note bodies, not just the listing.")
}
