// Package generator builds passphrases from role word lists.
package generator

import (
	"fmt"

	"github.com/verte-zerg/pass-phrase/internal/model"
)

// Generator produces passphrases using an injected Sampler.
type Generator struct {
	sampler Sampler
}

// New returns a Generator drawing indices from sampler.
func New(sampler Sampler) *Generator {
	return &Generator{sampler: sampler}
}

// Generate returns count independent passphrases. Words are drawn with
// replacement, so phrases and words within a phrase may repeat.
func (g *Generator) Generate(lists model.WordLists, count int) ([]model.Passphrase, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: passphrase count must be > 0, got %d", model.ErrInvalidConfiguration, count)
	}
	result := make([]model.Passphrase, 0, count)
	for i := 0; i < count; i++ {
		phrase, err := g.One(lists)
		if err != nil {
			return nil, err
		}
		result = append(result, phrase)
	}
	return result, nil
}

// One draws a single passphrase, one word per slot.
func (g *Generator) One(lists model.WordLists) (model.Passphrase, error) {
	var phrase model.Passphrase
	for i, role := range model.Slots {
		words := lists.List(role)
		if len(words) == 0 {
			return model.Passphrase{}, fmt.Errorf("%w: %s word list is empty", model.ErrInsufficientWords, role)
		}
		idx, err := g.sampler.Intn(len(words))
		if err != nil {
			return model.Passphrase{}, err
		}
		phrase[i] = words[idx]
	}
	return phrase, nil
}
