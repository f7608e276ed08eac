package cli

import (
	"fmt"
	"strings"

	"github.com/Stevedee925/phoenix/internal/storage"
)

// ResolveChallengeID matches a user-supplied reference against challenge ids
// (prefix) or titles (case-insensitive). Ambiguous references fail rather
// than guessing.
func ResolveChallengeID(store storage.Provider, ref string) (string, error) {
	challenges, err := store.GetAllChallenges()
	if err != nil {
		return "", err
	}

	var matches []string
	for _, c := range challenges {
		if strings.HasPrefix(c.ID, ref) || strings.EqualFold(c.Title, ref) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no challenge matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d challenges, be more specific", ref, len(matches))
	}
}

// ResolveRitualID matches a user-supplied reference against ritual ids
// (prefix) or titles (case-insensitive).
func ResolveRitualID(store storage.Provider, ref string) (string, error) {
	rituals, err := store.GetAllRituals()
	if err != nil {
		return "", err
	}

	var matches []string
	for _, r := range rituals {
		if strings.HasPrefix(r.ID, ref) || strings.EqualFold(r.Title, ref) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no ritual matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d rituals, be more specific", ref, len(matches))
	}
}
