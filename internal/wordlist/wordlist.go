// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/verte-zerg/pass-phrase/internal/model"
)

// LoadWords reads one word per line from the provided file path and keeps
// the words accepted by criteria.
func LoadWords(path string, criteria model.FilterCriteria) ([]string, error) {
	keep, err := CompileFilter(criteria)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrResourceNotFound, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := readFiltered(file, keep)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, insufficientWords(path)
	}
	return words, nil
}

// ReadWords filters words from r. It is LoadWords without the file handling.
func ReadWords(r io.Reader, criteria model.FilterCriteria) ([]string, error) {
	keep, err := CompileFilter(criteria)
	if err != nil {
		return nil, err
	}
	words, err := readFiltered(r, keep)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, insufficientWords("the word list")
	}
	return words, nil
}

// LoadAll loads every role from paths with the same criteria.
func LoadAll(paths map[model.Role]string, criteria model.FilterCriteria) (model.WordLists, error) {
	lists := model.WordLists{Paths: make(map[model.Role]string, len(model.Roles))}
	for _, role := range model.Roles {
		path, ok := paths[role]
		if !ok || path == "" {
			return model.WordLists{}, fmt.Errorf("%w: no %s word file", model.ErrInvalidConfiguration, role)
		}
		words, err := LoadWords(path, criteria)
		if err != nil {
			return model.WordLists{}, fmt.Errorf("%s: %w", role, err)
		}
		switch role {
		case model.Adjectives:
			lists.Adjectives = words
		case model.Nouns:
			lists.Nouns = words
		case model.Verbs:
			lists.Verbs = words
		}
		lists.Paths[role] = path
	}
	return lists, nil
}

func readFiltered(r io.Reader, keep FilterFunc) ([]string, error) {
	var words []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		// A final chunk without content is the end of the file, not a line.
		if err == io.EOF && line == "" {
			break
		}
		word := strings.TrimSpace(line)
		if keep(word) {
			words = append(words, word)
		}
		if err == io.EOF {
			break
		}
	}
	return words, nil
}

func insufficientWords(source string) error {
	return fmt.Errorf("%w: could not get enough words, either %s is too small or the settings are too strict", model.ErrInsufficientWords, source)
}
