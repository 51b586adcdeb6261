package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "branchdiff",
		Short: "Compare binary package manifests of two distribution branches",
		Long: `Branchdiff downloads the binary package manifests of two named
distribution branches and reports, per architecture, which packages exist
in only one branch and how the versions of shared packages compare.

Manifests are cached on disk and refreshed when older than the configured
TTL (one hour by default).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(NewCompareCmd())

	return rootCmd
}
