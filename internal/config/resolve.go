package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/verte-zerg/pass-phrase/internal/model"
)

// SearchPaths lists where a role's word list is looked for when no path is
// given: the working directory, the config directory, then the legacy
// dot-directory.
func SearchPaths(role model.Role) []string {
	paths := []string{string(role) + ".txt", UserWordListPath(role)}
	if legacy := LegacyWordListPath(role); legacy != "" {
		paths = append(paths, legacy)
	}
	return paths
}

// ResolveWordListPath returns the word list to load for role. An explicit
// path must exist; otherwise the first existing search path wins.
func ResolveWordListPath(role model.Role, explicit string) (string, error) {
	if explicit != "" {
		path := ExpandHome(explicit)
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("%w: could not open the specified %s word file %s: %w", model.ErrResourceNotFound, role, path, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%w: the specified %s word file %s is a directory", model.ErrResourceNotFound, role, path)
		}
		return path, nil
	}
	candidates := SearchPaths(role)
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: could not find %s word file (searched %s)", model.ErrInvalidConfiguration, role, strings.Join(candidates, ", "))
}

// ResolveAll resolves every role. explicit may omit roles.
func ResolveAll(explicit map[model.Role]string) (map[model.Role]string, error) {
	out := make(map[model.Role]string, len(model.Roles))
	for _, role := range model.Roles {
		path, err := ResolveWordListPath(role, explicit[role])
		if err != nil {
			return nil, err
		}
		out[role] = path
	}
	return out, nil
}
