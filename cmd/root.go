package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Local-first portfolio site with in-place editing",
	Long: `Folio serves a personal portfolio site from a single local document.
With dev mode enabled the site can be edited in place: sections are
replaced wholesale, every change is written through to local storage,
and the rendered page follows immediately.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
