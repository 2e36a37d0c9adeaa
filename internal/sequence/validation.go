package sequence

import "fmt"

// ValidDNABases is the screening alphabet. Ambiguity codes such as N are
// rejected: the classifier is only defined over unambiguous bases.
var ValidDNABases = map[rune]bool{'A': true, 'C': true, 'G': true, 'T': true}

// InvalidBaseError is returned when a base outside the alphabet is found.
type InvalidBaseError struct {
	Position int
	Found    rune
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q at position %d: only A, T, G and C are allowed", e.Found, e.Position)
}

// ValidateDNA validates that a string contains only valid DNA bases.
// The empty string is valid.
func ValidateDNA(bases string) error {
	for i, b := range bases {
		if !ValidDNABases[b] {
			return &InvalidBaseError{Position: i, Found: b}
		}
	}
	return nil
}

// IsValidDNABase checks if a character is a valid DNA base.
func IsValidDNABase(c rune) bool {
	return ValidDNABases[c]
}
