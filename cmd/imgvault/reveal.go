package main

import (
	"os"

	"imgvault/internal/errors"
	"imgvault/internal/platform"

	"github.com/spf13/cobra"
)

// NewRevealCmd creates the reveal command, which opens the system file
// manager with the given file highlighted.
func NewRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <path>",
		Short: "Show a file in the system file manager",
		Long:  `Open the platform's file manager with the given file selected, the same way the GUI's "Reveal" action does.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err != nil {
				if os.IsNotExist(err) {
					return errors.NewFileError("no such file", path, errors.FileNotFound, err)
				}
				return errors.Wrap(err, "cannot access "+path)
			}

			platform.NewRevealer().Reveal(path)
			return nil
		},
	}
}
