package keyword

import (
	"sort"
	"strings"
	"sync"
)

// Suggestion is a candidate replacement for a term the document does not
// contain.
type Suggestion struct {
	Term      string  // The suggested term
	Distance  int     // Edit distance from the original term
	Frequency int     // Number of chunks containing the term
	Score     float64 // Combined score for ranking
}

// SpellChecker suggests replacements for query terms missing from the
// indexed vocabulary, so a lookup for "mitochondira" can point at
// "mitochondria".
type SpellChecker struct {
	dictionary     TermDictionary
	maxDistance    int
	minFreq        int
	maxSuggestions int

	// Cached vocabulary for fast scanning
	termsCache []string
	termSet    map[string]struct{}
	cacheMu    sync.RWMutex
	cacheValid bool
}

// SpellCheckerOption is a functional option for configuring SpellChecker.
type SpellCheckerOption func(*SpellChecker)

// WithMaxDistance sets the maximum edit distance for suggestions.
func WithMaxDistance(d int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if d > 0 {
			s.maxDistance = d
		}
	}
}

// WithMinFrequency sets the minimum chunk frequency for suggestions. Terms
// with lower frequency are ignored as likely noise.
func WithMinFrequency(f int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if f >= 0 {
			s.minFreq = f
		}
	}
}

// WithMaxSuggestions sets the maximum number of suggestions per term.
func WithMaxSuggestions(n int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if n > 0 {
			s.maxSuggestions = n
		}
	}
}

// NewSpellChecker creates a SpellChecker over the given dictionary.
func NewSpellChecker(dict TermDictionary, opts ...SpellCheckerOption) *SpellChecker {
	s := &SpellChecker{
		dictionary:     dict,
		maxDistance:    2,
		minFreq:        1,
		maxSuggestions: 5,
		termSet:        make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RefreshCache reloads the vocabulary from the dictionary. Call after the
// index is rebuilt.
func (s *SpellChecker) RefreshCache() error {
	terms, err := s.dictionary.GetAllTerms()
	if err != nil {
		return err
	}

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.termsCache = terms
	s.termSet = make(map[string]struct{}, len(terms))
	for _, t := range terms {
		s.termSet[strings.ToLower(t)] = struct{}{}
	}
	s.cacheValid = true

	return nil
}

// IsMisspelled reports whether a term is absent from the vocabulary.
func (s *SpellChecker) IsMisspelled(term string) bool {
	if !s.cacheValid {
		if err := s.RefreshCache(); err != nil {
			return false
		}
	}

	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()

	_, exists := s.termSet[strings.ToLower(term)]
	return !exists
}

// Suggest returns up to maxSuggestions replacements for a single term,
// best first. A term already in the vocabulary gets no suggestions.
func (s *SpellChecker) Suggest(term string) []Suggestion {
	if !s.cacheValid {
		if err := s.RefreshCache(); err != nil {
			return nil
		}
	}

	termLower := strings.ToLower(term)

	s.cacheMu.RLock()
	terms := s.termsCache
	_, exists := s.termSet[termLower]
	s.cacheMu.RUnlock()
	if exists {
		return nil
	}

	suggestions := make([]Suggestion, 0)
	for _, dictTerm := range terms {
		dictTermLower := strings.ToLower(dictTerm)
		if dictTermLower == termLower {
			continue
		}

		// Length difference bounds the edit distance, so skip the expensive
		// computation when it cannot be within range.
		lenDiff := len(dictTermLower) - len(termLower)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > s.maxDistance {
			continue
		}

		distance := EditDistance(termLower, dictTermLower)
		if distance > s.maxDistance {
			continue
		}

		freq, err := s.dictionary.GetTermFrequency(dictTerm)
		if err != nil || freq < s.minFreq {
			continue
		}

		// Closer terms beat more frequent ones; frequency breaks near-ties.
		score := (1.0 / float64(distance+1)) * float64(freq)
		suggestions = append(suggestions, Suggestion{
			Term:      dictTerm,
			Distance:  distance,
			Frequency: freq,
			Score:     score,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > s.maxSuggestions {
		suggestions = suggestions[:s.maxSuggestions]
	}
	return suggestions
}

// SuggestQuery returns a corrected form of query with each out-of-vocabulary
// term replaced by its best suggestion. Returns the empty string when no
// term needed correcting, so callers can tell "nothing to fix" from a real
// suggestion.
func (s *SpellChecker) SuggestQuery(query string) string {
	terms := strings.Fields(strings.ToLower(query))
	corrected := make([]string, len(terms))
	changed := false
	for i, term := range terms {
		corrected[i] = term
		if !s.IsMisspelled(term) {
			continue
		}
		if suggestions := s.Suggest(term); len(suggestions) > 0 {
			corrected[i] = suggestions[0].Term
			changed = true
		}
	}
	if !changed {
		return ""
	}
	return strings.Join(corrected, " ")
}
