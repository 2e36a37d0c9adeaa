package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/viroscan/viroscan-go/config"
	"github.com/viroscan/viroscan-go/pkg/viroscan"
)

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a DNA sample against the reference genome",
	Long: `Screen a DNA sample against the reference genome

The sample is compared to the reference with Ratcliff/Obershelp block
matching; samples below the similarity threshold are reported as infected.
Global (Needleman-Wunsch) and local (Smith-Waterman) alignments of the
pair are printed alongside the classification.

The query is read from --seq, from the first record of a FASTA file given
with --in, or interactively from stdin when neither is set.`,
	Run: runScreen,
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("reference", "r", "cancer_lung.fna", "Path to the reference genome <FASTA>")
	screenCmd.Flags().StringP("seq", "s", "", "Query sequence to analyze")
	screenCmd.Flags().StringP("in", "i", "", "Input file name with the query sequence <FASTA>")
	screenCmd.Flags().Float64P("threshold", "t", viroscan.DefaultThreshold,
		"Similarity percentage below which the sample is infected")

	// Bind the parameters to viper
	viper.BindPFlag("reference", screenCmd.Flags().Lookup("reference"))
	viper.BindPFlag("threshold", screenCmd.Flags().Lookup("threshold"))
}

func runScreen(cmd *cobra.Command, args []string) {
	cfg := config.New()

	ref, err := viroscan.LoadReference(cfg.Reference)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load the reference genome: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Reference genome loaded successfully!")

	query, err := readQuery(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := viroscan.Screen(ref, query, cfg.Options())

	fmt.Println()
	fmt.Println(result.Report())

	if result.Infected {
		os.Exit(2)
	}
}

// readQuery resolves the query sequence from --seq, --in, or stdin.
func readQuery(cmd *cobra.Command) (*viroscan.Sequence, error) {
	raw, _ := cmd.Flags().GetString("seq")
	in, _ := cmd.Flags().GetString("in")

	if raw == "" && in != "" {
		sequences, err := viroscan.ReadFASTA(in)
		if err != nil {
			return nil, err
		}
		if len(sequences) == 0 {
			return nil, fmt.Errorf("no sequences found in %s", in)
		}
		return sequences[0], nil
	}

	if raw == "" {
		fmt.Print("Enter the DNA sequence to analyze: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("reading query: %w", err)
		}
		raw = strings.TrimSpace(line)
	}

	query, err := viroscan.NewSequence(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid DNA sequence, please only use A, T, G and C bases: %w", err)
	}
	return query, nil
}
