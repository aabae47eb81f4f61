// Package wordlist provides word list filtering helpers.
package wordlist

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/verte-zerg/pass-phrase/internal/model"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// CompileFilter builds the predicate for the given criteria. The character
// pattern must match the whole word, one repetition per character class.
func CompileFilter(criteria model.FilterCriteria) (FilterFunc, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	pattern := criteria.CharPattern
	if pattern == "" {
		pattern = model.DefaultCharFilter
	}
	re, err := regexp.Compile("^(?:" + pattern + ")*$")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid --valid-chars %q: %v", model.ErrInvalidConfiguration, pattern, err)
	}
	minLen, maxLen := criteria.MinLength, criteria.MaxLength
	return func(word string) bool {
		n := utf8.RuneCountInString(word)
		if n < minLen || n > maxLen {
			return false
		}
		return re.MatchString(word)
	}, nil
}
