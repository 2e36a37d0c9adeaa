// Package fasta reads DNA sequences from FASTA-formatted input.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viroscan/viroscan-go/internal/sequence"
)

// Read reads all sequences from a FASTA file.
func Read(path string) ([]*sequence.Sequence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse parses FASTA records from a reader. One sequence is returned per
// '>' header; body lines are whitespace-trimmed and concatenated.
func Parse(r io.Reader) ([]*sequence.Sequence, error) {
	sequences := make([]*sequence.Sequence, 0)
	scanner := bufio.NewScanner(r)

	var currentID, currentDesc string
	var currentBases strings.Builder

	flush := func() error {
		if currentBases.Len() == 0 {
			return nil
		}
		seq, err := sequence.WithMetadata(currentBases.String(), currentID, currentDesc)
		if err != nil {
			return err
		}
		sequences = append(sequences, seq)
		currentBases.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}

			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			currentID = parts[0]
			currentDesc = ""
			if len(parts) > 1 {
				currentDesc = parts[1]
			}
		} else {
			currentBases.WriteString(line)
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return sequences, nil
}

// LoadReference loads a reference genome as one sequence: every header
// line is dropped and all remaining lines are stripped of whitespace and
// concatenated, regardless of how many records the file claims to hold.
func LoadReference(path string) (*sequence.Sequence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reference %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var bases strings.Builder

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '>' {
			continue
		}
		bases.WriteString(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading reference %s: %w", path, err)
	}

	if bases.Len() == 0 {
		return nil, fmt.Errorf("no sequence data in %s", path)
	}

	seq, err := sequence.New(bases.String())
	if err != nil {
		return nil, fmt.Errorf("reference %s: %w", path, err)
	}

	return seq, nil
}
