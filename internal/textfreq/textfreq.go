// Package textfreq turns raw text into the word-frequency model consumed by
// the renderer.
package textfreq

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/oukeidos/wcgen/internal/stopwords"
)

// WordFrequency is one entry of the frequency model. Weight is Count divided
// by the largest Count in the model, so the most frequent word has weight 1.
type WordFrequency struct {
	Word   string
	Count  int
	Weight float64
}

// Options controls Count.
type Options struct {
	// Stopwords are removed before counting. Nil means no filtering.
	Stopwords stopwords.Set
	// NormalizePlurals folds "cats" into "cat" when both occur.
	NormalizePlurals bool
	// IncludeNumbers keeps tokens made only of digits.
	IncludeNumbers bool
	// MinWordLength drops tokens shorter than this many runes.
	MinWordLength int
}

// DefaultOptions filters the standard English stopwords and folds plurals.
func DefaultOptions() Options {
	return Options{
		Stopwords:        stopwords.Standard(),
		NormalizePlurals: true,
	}
}

// Tokenize splits text into candidate words. Word boundaries follow Unicode
// UAX #29; inside each segment a token starts with a letter, digit or
// underscore and may continue with those characters or apostrophes.
func Tokenize(text string) []string {
	text = strings.ReplaceAll(text, "’", "'")

	var tokens []string
	state := -1
	var segment string
	for len(text) > 0 {
		segment, text, state = uniseg.FirstWordInString(text, state)
		tokens = appendWordRuns(tokens, segment)
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func appendWordRuns(tokens []string, segment string) []string {
	start := -1
	for i, r := range segment {
		switch {
		case start < 0 && isWordRune(r):
			start = i
		case start >= 0 && !isWordRune(r) && r != '\'':
			tokens = append(tokens, segment[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, segment[start:])
	}
	return tokens
}

func isNumber(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return word != ""
}

// spellings tracks how often each spelling of one case-folded word occurs,
// remembering the order in which spellings first appeared.
type spellings struct {
	order  []string
	counts map[string]int
}

func (s *spellings) add(word string, n int) {
	if s.counts == nil {
		s.counts = make(map[string]int)
	}
	if _, ok := s.counts[word]; !ok {
		s.order = append(s.order, word)
	}
	s.counts[word] += n
}

func (s *spellings) total() int {
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

// dominant is the most frequent spelling; ties go to the earliest seen.
func (s *spellings) dominant() string {
	best, bestCount := "", -1
	for _, w := range s.order {
		if c := s.counts[w]; c > bestCount {
			best, bestCount = w, c
		}
	}
	return best
}

// Count builds the frequency model for text, sorted by Count descending.
// Equal counts keep the order in which the words first appeared.
func Count(text string, opts Options) []WordFrequency {
	groups := make(map[string]*spellings)
	var order []string

	for _, tok := range Tokenize(text) {
		if strings.HasSuffix(tok, "'s") || strings.HasSuffix(tok, "'S") {
			tok = tok[:len(tok)-2]
		}
		if tok == "" {
			continue
		}
		if !opts.IncludeNumbers && isNumber(tok) {
			continue
		}
		if opts.MinWordLength > 0 && utf8.RuneCountInString(tok) < opts.MinWordLength {
			continue
		}
		folded := stopwords.Fold(tok)
		if opts.Stopwords != nil {
			if _, stop := opts.Stopwords[folded]; stop {
				continue
			}
		}
		g, ok := groups[folded]
		if !ok {
			g = &spellings{}
			groups[folded] = g
			order = append(order, folded)
		}
		g.add(tok, 1)
	}

	if opts.NormalizePlurals {
		foldPlurals(groups, order)
	}

	out := make([]WordFrequency, 0, len(groups))
	for _, key := range order {
		g, ok := groups[key]
		if !ok {
			continue
		}
		out = append(out, WordFrequency{Word: g.dominant(), Count: g.total()})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return weigh(out)
}

// foldPlurals merges "xs" into "x" when both were seen. Words ending in "ss"
// are left alone.
func foldPlurals(groups map[string]*spellings, order []string) {
	for _, key := range order {
		if !strings.HasSuffix(key, "s") || strings.HasSuffix(key, "ss") {
			continue
		}
		plural, ok := groups[key]
		if !ok {
			continue
		}
		singular, ok := groups[key[:len(key)-1]]
		if !ok {
			continue
		}
		for _, spelling := range plural.order {
			singular.add(spelling[:len(spelling)-1], plural.counts[spelling])
		}
		delete(groups, key)
	}
}

// Top keeps the first n entries of a sorted model and recomputes weights.
// n <= 0 keeps everything.
func Top(freqs []WordFrequency, n int) []WordFrequency {
	if n > 0 && len(freqs) > n {
		freqs = freqs[:n]
	}
	out := make([]WordFrequency, len(freqs))
	copy(out, freqs)
	return weigh(out)
}

func weigh(freqs []WordFrequency) []WordFrequency {
	if len(freqs) == 0 {
		return freqs
	}
	max := 0
	for _, f := range freqs {
		if f.Count > max {
			max = f.Count
		}
	}
	for i := range freqs {
		freqs[i].Weight = float64(freqs[i].Count) / float64(max)
	}
	return freqs
}
