package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/config"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordladder",
		Short: "Find shortest word ladders in a dictionary",
		Long: `wordladder reads a dictionary, keeps the words of one length and links
every pair that differs in exactly one letter. It reports degree statistics
for that graph and finds shortest ladders between two words.

Settings come from flags, then WORDLADDER_* environment variables
(a .env file in the working directory is honored), then defaults.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("dict", "d", config.DefaultDict, "Dictionary file, one word per line")
	flags.IntP("length", "n", config.DefaultLength, "Word length to keep")
	flags.Int("workers", config.DefaultWorkers, "Goroutines used to resolve neighbors")
	flags.Int("cache-size", config.DefaultCacheSize, "Number of ladder results to cache (0 disables)")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug|info|warn|error")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show word count and degree statistics",
		Args:  cobra.NoArgs,
		RunE:  RunStats,
	}
	statsCmd.Flags().Bool("json", false, "Print machine-readable statistics")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every word with its neighbor count",
		Args:  cobra.NoArgs,
		RunE:  RunList,
	}
	listCmd.Flags().Bool("neighbors", false, "Also print each word's neighbors")

	pathCmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find the shortest ladder between two words",
		Args:  cobra.ExactArgs(2),
		RunE:  RunPath,
	}
	pathCmd.Flags().Int("max-depth", 0, "Give up on ladders longer than this (0 = no limit)")
	pathCmd.Flags().Bool("json", false, "Print machine-readable path result")

	rootCmd.AddCommand(statsCmd, listCmd, pathCmd)
	return rootCmd
}
