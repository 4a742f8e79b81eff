package keyword

import "unicode/utf8"

// EditDistance calculates the Damerau-Levenshtein distance between two
// strings: the minimum number of insertions, deletions, substitutions, or
// transpositions of adjacent characters needed to turn one into the other.
// Transpositions count as one edit because swapped letters are the most
// common typing mistake.
func EditDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return utf8.RuneCountInString(b)
	}
	if len(b) == 0 {
		return utf8.RuneCountInString(a)
	}

	// Convert to runes for proper Unicode handling
	runesA := []rune(a)
	runesB := []rune(b)
	lenA := len(runesA)
	lenB := len(runesB)

	// Full matrix; the transposition check needs two previous rows.
	d := make([][]int, lenA+1)
	for i := range d {
		d[i] = make([]int, lenB+1)
	}
	for i := 0; i <= lenA; i++ {
		d[i][0] = i
	}
	for j := 0; j <= lenB; j++ {
		d[0][j] = j
	}

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}

			d[i][j] = min(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)

			if i > 1 && j > 1 &&
				runesA[i-1] == runesB[j-2] &&
				runesA[i-2] == runesB[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+cost) // transposition
			}
		}
	}

	return d[lenA][lenB]
}
