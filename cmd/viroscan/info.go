package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viroscan/viroscan-go/pkg/viroscan"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show sequence information",
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringP("file", "f", "", "FASTA file to summarize")
	infoCmd.Flags().StringP("seq", "s", "", "Sequence string to summarize")
}

func runInfo(cmd *cobra.Command, args []string) {
	file, _ := cmd.Flags().GetString("file")
	raw, _ := cmd.Flags().GetString("seq")

	if file == "" && raw == "" {
		fmt.Fprintln(os.Stderr, "Error: either --file or --seq is required")
		cmd.Usage()
		os.Exit(1)
	}

	var sequences []*viroscan.Sequence

	if file != "" {
		var err error
		sequences, err = viroscan.ReadFASTA(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
	} else {
		s, err := viroscan.NewSequence(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		sequences = []*viroscan.Sequence{s}
	}

	for i, s := range sequences {
		counts := s.BaseCounts()
		fmt.Printf("Sequence %d:\n", i+1)
		if s.ID != "" {
			fmt.Printf("  ID: %s\n", s.ID)
		}
		fmt.Printf("  Length: %d bp\n", s.Len())
		fmt.Printf("  GC Content: %.2f%%\n", s.GCContent()*100)
		fmt.Printf("  AT Content: %.2f%%\n", s.ATContent()*100)
		fmt.Printf("  Base Counts: A=%d, C=%d, G=%d, T=%d\n",
			counts.A, counts.C, counts.G, counts.T)
		fmt.Println()
	}
}
