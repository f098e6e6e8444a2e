package main

import (
	"imgvault/internal/gui"

	"github.com/spf13/cobra"
)

// NewGUICmd creates the GUI command for the CLI
func NewGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Long:  `Launch the GUI version of imgvault to browse and manage image collections visually.`,
		Run: func(cmd *cobra.Command, args []string) {
			guiApp := gui.NewApp(cfg)
			guiApp.Run()
		},
	}
}
