// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Role is a grammatical slot kind filled from one word list.
type Role string

// Word list roles.
const (
	Adjectives Role = "adjectives"
	Nouns      Role = "nouns"
	Verbs      Role = "verbs"
)

// Roles lists every role in load order.
var Roles = []Role{Adjectives, Nouns, Verbs}

// Slots is the passphrase template. Adjectives and nouns fill two slots each.
var Slots = [SlotCount]Role{Adjectives, Nouns, Verbs, Adjectives, Nouns}

// SlotCount is the number of words in a passphrase.
const SlotCount = 5

// Default generation settings.
const (
	DefaultNum        = 1
	DefaultMinLength  = 0
	DefaultMaxLength  = 20
	DefaultCharFilter = "."
)

// Config defines generation settings after flags and the config file are merged.
type Config struct {
	Num         int
	Verbose     bool
	Interactive bool
	Color       bool
	Filter      FilterCriteria
	Paths       map[Role]string
}

// Validate checks the settings that do not depend on the file system.
func (c Config) Validate() error {
	if c.Num <= 0 {
		return fmt.Errorf("%w: --num must be > 0, there is little point running without generating a single pass phrase", ErrInvalidConfiguration)
	}
	return c.Filter.Validate()
}

// FilterCriteria restricts which words of a list are usable.
type FilterCriteria struct {
	MinLength   int
	MaxLength   int
	CharPattern string
}

// DefaultFilter returns the criteria used when nothing is configured.
func DefaultFilter() FilterCriteria {
	return FilterCriteria{
		MinLength:   DefaultMinLength,
		MaxLength:   DefaultMaxLength,
		CharPattern: DefaultCharFilter,
	}
}

// Validate checks the length bounds.
func (f FilterCriteria) Validate() error {
	if f.MinLength < 0 {
		return fmt.Errorf("%w: --min must be >= 0", ErrInvalidConfiguration)
	}
	if f.MaxLength < f.MinLength {
		return fmt.Errorf("%w: --max (%d) must not be less than --min (%d)", ErrInvalidConfiguration, f.MaxLength, f.MinLength)
	}
	return nil
}

// WordLists holds the filtered list and source path for every role.
type WordLists struct {
	Adjectives []string
	Nouns      []string
	Verbs      []string
	Paths      map[Role]string
}

// List returns the words for a role.
func (l WordLists) List(role Role) []string {
	switch role {
	case Adjectives:
		return l.Adjectives
	case Nouns:
		return l.Nouns
	case Verbs:
		return l.Verbs
	default:
		return nil
	}
}

// Passphrase is one generated phrase in slot order.
type Passphrase [SlotCount]string

// String joins the words with single spaces.
func (p Passphrase) String() string {
	return strings.Join(p[:], " ")
}
