package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/storage"
)

func seededStore(t *testing.T) *storage.JSONStore {
	t.Helper()
	s := storage.NewJSONStore(filepath.Join(t.TempDir(), "phoenix.json"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	challenges := []models.Challenge{
		{ID: "aaa111-1", Title: "Hydration", Description: "d", Kind: models.ChallengeCustom, Frequency: models.FrequencyDaily},
		{ID: "bbb222-2", Title: "Early Rise", Description: "d", Kind: models.ChallengeCustom, Frequency: models.FrequencyDaily},
		{ID: "bbb333-3", Title: "Cold Shower", Description: "d", Kind: models.ChallengeCustom, Frequency: models.FrequencyDaily},
	}
	for _, c := range challenges {
		if err := s.SaveChallenge(c); err != nil {
			t.Fatalf("SaveChallenge: %v", err)
		}
	}

	if err := s.SaveRitual(models.Ritual{
		ID: "rrr111-1", Title: "Evening Stretch", Description: "d",
		Time: "21:00", Days: []time.Weekday{time.Monday}, IsActive: true,
	}); err != nil {
		t.Fatalf("SaveRitual: %v", err)
	}

	return s
}

func TestResolveChallengeID(t *testing.T) {
	s := seededStore(t)

	id, err := ResolveChallengeID(s, "aaa")
	if err != nil {
		t.Fatalf("prefix resolve: %v", err)
	}
	if id != "aaa111-1" {
		t.Errorf("resolved %q, want aaa111-1", id)
	}

	id, err = ResolveChallengeID(s, "hydration")
	if err != nil {
		t.Fatalf("title resolve: %v", err)
	}
	if id != "aaa111-1" {
		t.Errorf("resolved %q, want aaa111-1", id)
	}

	if _, err := ResolveChallengeID(s, "zzz"); err == nil || !strings.Contains(err.Error(), "no challenge") {
		t.Errorf("expected no-match error, got %v", err)
	}
	if _, err := ResolveChallengeID(s, "bbb"); err == nil || !strings.Contains(err.Error(), "be more specific") {
		t.Errorf("expected ambiguity error, got %v", err)
	}
}

func TestResolveRitualID(t *testing.T) {
	s := seededStore(t)

	id, err := ResolveRitualID(s, "evening stretch")
	if err != nil {
		t.Fatalf("title resolve: %v", err)
	}
	if id != "rrr111-1" {
		t.Errorf("resolved %q, want rrr111-1", id)
	}

	if _, err := ResolveRitualID(s, "morning"); err == nil {
		t.Error("expected no-match error")
	}
}
