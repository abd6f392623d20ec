// Package profanity flags message bodies containing blocked words. The
// engine only sees the IsProfane predicate, so the filter is swappable.
package profanity

import (
	"strings"
	"unicode"
)

var defaultWords = []string{
	"arse", "arsehole", "ass", "asshole", "bastard", "bitch", "bollocks",
	"crap", "cunt", "damn", "dick", "fuck", "fucker", "fucking", "piss",
	"prick", "shit", "slut", "twat", "wanker", "whore",
}

type Filter struct {
	words map[string]struct{}
}

// New builds a filter over the default word list plus any extra words.
func New(extra ...string) *Filter {
	words := make(map[string]struct{}, len(defaultWords)+len(extra))
	for _, w := range defaultWords {
		words[w] = struct{}{}
	}
	for _, w := range extra {
		words[strings.ToLower(w)] = struct{}{}
	}
	return &Filter{words: words}
}

// IsProfane reports whether any word of the text is blocked. Matching is
// case-insensitive and per word, so "class" passes while "ass" does not.
func (f *Filter) IsProfane(text string) bool {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, t := range tokens {
		if _, ok := f.words[t]; ok {
			return true
		}
	}
	return false
}
