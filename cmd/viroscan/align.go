package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viroscan/viroscan-go/config"
	"github.com/viroscan/viroscan-go/pkg/viroscan"
)

// alignCmd represents the align command
var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align two sequences",
	Long: `Align two sequences

Performs Smith-Waterman local alignment by default, or Needleman-Wunsch
global alignment with --global. Scoring is identity-only unless the
match/mismatch/gap flags are set.`,
	Run: runAlign,
}

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().String("seq1", "", "First sequence")
	alignCmd.Flags().String("seq2", "", "Second sequence")
	alignCmd.Flags().BoolP("global", "g", false, "Use global alignment (Needleman-Wunsch)")
	alignCmd.MarkFlagRequired("seq1")
	alignCmd.MarkFlagRequired("seq2")
}

func runAlign(cmd *cobra.Command, args []string) {
	cfg := config.New()

	seq1, seq2 := readPair(cmd)

	global, _ := cmd.Flags().GetBool("global")

	var pair *viroscan.AlignedPair
	if global {
		pair = viroscan.AlignGlobal(seq1, seq2, cfg.Scheme())
	} else {
		pair = viroscan.AlignLocal(seq1, seq2, cfg.Scheme())
	}

	fmt.Println(pair.Format())
}

// readPair parses the seq1/seq2 flags into validated sequences.
func readPair(cmd *cobra.Command) (*viroscan.Sequence, *viroscan.Sequence) {
	raw1, _ := cmd.Flags().GetString("seq1")
	raw2, _ := cmd.Flags().GetString("seq2")

	seq1, err := viroscan.NewSequence(raw1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: seq1: %v\n", err)
		os.Exit(1)
	}

	seq2, err := viroscan.NewSequence(raw2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: seq2: %v\n", err)
		os.Exit(1)
	}

	return seq1, seq2
}
