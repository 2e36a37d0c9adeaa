package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viroscan/viroscan-go/pkg/viroscan"
)

// similarityCmd represents the similarity command
var similarityCmd = &cobra.Command{
	Use:   "similarity",
	Short: "Score the block-matching similarity of two sequences",
	Run: func(cmd *cobra.Command, args []string) {
		seq1, seq2 := readPair(cmd)
		fmt.Printf("%.2f%%\n", viroscan.Similarity(seq1, seq2))
	},
}

func init() {
	rootCmd.AddCommand(similarityCmd)

	similarityCmd.Flags().String("seq1", "", "First sequence")
	similarityCmd.Flags().String("seq2", "", "Second sequence")
	similarityCmd.MarkFlagRequired("seq1")
	similarityCmd.MarkFlagRequired("seq2")
}
