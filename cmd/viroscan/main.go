// Command viroscan screens DNA samples against a reference genome:
// block-matching similarity, infection classification, and global plus
// local pairwise alignments.
package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/viroscan/viroscan-go/config"
	"github.com/viroscan/viroscan-go/pkg/viroscan"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "viroscan",
	Short: `Screen DNA samples against a reference genome.
Computes block-matching similarity, classifies the sample against a
similarity threshold, and reports global and local alignments`,
	Version: viroscan.Version,
}

func init() {
	// Scoring applies to every subcommand that aligns
	rootCmd.PersistentFlags().Float64("match", 1, "Score for identical aligned bases")
	rootCmd.PersistentFlags().Float64("mismatch", 0, "Score for differing aligned bases")
	rootCmd.PersistentFlags().Float64("gap-open", 0, "Score charged per gapped position")
	rootCmd.PersistentFlags().Float64("gap-extend", 0, "Reserved for affine-style schemes")

	viper.BindPFlag("match", rootCmd.PersistentFlags().Lookup("match"))
	viper.BindPFlag("mismatch", rootCmd.PersistentFlags().Lookup("mismatch"))
	viper.BindPFlag("gap-open", rootCmd.PersistentFlags().Lookup("gap-open"))
	viper.BindPFlag("gap-extend", rootCmd.PersistentFlags().Lookup("gap-extend"))
}

func main() {
	config.SetDefaults()

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
