// Package cli provides the command-line interface for shtc.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/shtc/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shtc",
	Short: "Convert between SHT colour codes and RGB hex",
	Long: `Shtc converts colours between SHT codes, hex RGB strings and exact
rational RGB triples.

SHT codes are a compact human-readable colour vocabulary: one hue
letter (r o y g c b v m, or a for grey) followed by counted modifier
letters (n tone, s shade, t tint). Each repeated modifier letter moves
the colour half the remaining distance toward grey, black or white, so
codes like "rt" (a red tint) or "bnns" (a toned, shaded blue) expand
deterministically to RGB, and any RGB value maps back to its nearest
code.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// NewRootCmd returns the fully wired root command. Tests use this to
// drive the CLI with their own args and output streams.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(paletteCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

// newLogger returns the diagnostic logger for a command invocation.
// Verbose runs log at debug level to stderr; otherwise logging is off.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "shtc",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "shtc",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
