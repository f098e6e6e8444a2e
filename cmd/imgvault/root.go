package main

import (
	"fmt"

	"imgvault/internal/config"
	"imgvault/internal/i18n"
	"imgvault/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "imgvault",
		Short:   "An image collection manager",
		Long:    `ImgVault keeps image collections organized: browse, tag, and play them back as slideshows.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				fmt.Printf("Warning: could not load config: %v. Using default settings.\n", err)
				cfg = config.New()
			}

			if cmd.Flags().Changed("debug") {
				cfg.Settings.Debug = debug
			}
			log.SetDebug(cfg.Settings.Debug)
			if err := i18n.Init(cfg.Settings.Language); err != nil {
				log.Warnf("could not load translations: %v", err)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/imgvault/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging and non-native dialogs")

	// Add subcommands
	rootCmd.AddCommand(NewGUICmd())
	rootCmd.AddCommand(NewRevealCmd())

	return rootCmd
}
