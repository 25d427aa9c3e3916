// Package stopwords holds the built-in English stopword list and the set
// arithmetic used to combine it with a user's exclusion list.
package stopwords

import (
	_ "embed"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed english.txt
var englishList string

var english = parseList(englishList)

// Set is a case-folded word set.
type Set map[string]struct{}

// Standard returns a fresh copy of the built-in English stopword set.
func Standard() Set {
	out := make(Set, len(english))
	for w := range english {
		out[w] = struct{}{}
	}
	return out
}

// Fold lower-cases a word with Unicode-aware rules. Every lookup against a
// Set goes through Fold.
func Fold(word string) string {
	return cases.Lower(language.Und).String(word)
}

// ParseCustom turns exclusion-list text (one word per line) into a Set.
// Lines are trimmed and lower-cased; blank lines are dropped.
func ParseCustom(text string) Set {
	out := make(Set)
	for _, line := range strings.Split(text, "\n") {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		out[Fold(w)] = struct{}{}
	}
	return out
}

// Merge returns the union of the given sets.
func Merge(sets ...Set) Set {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make(Set, n)
	for _, s := range sets {
		for w := range s {
			out[w] = struct{}{}
		}
	}
	return out
}

// WithCustom is Standard() merged with ParseCustom(text).
func WithCustom(text string) Set {
	return Merge(english, ParseCustom(text))
}

// Contains reports whether the folded form of word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[Fold(word)]
	return ok
}

// Add inserts words after folding them.
func (s Set) Add(words ...string) {
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		s[Fold(w)] = struct{}{}
	}
}

// Words returns the members sorted alphabetically.
func (s Set) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func parseList(raw string) Set {
	out := make(Set)
	for _, line := range strings.Split(raw, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			out[w] = struct{}{}
		}
	}
	return out
}
