package achievements

import (
	"testing"
	"time"

	"github.com/pkoval/fifa-rivals/internal/catalog"
	"github.com/pkoval/fifa-rivals/internal/models"
	"github.com/pkoval/fifa-rivals/pkg/logger"
)

// Mock store
type mockStore struct {
	matches []models.Match
	unlocks []models.Achievement
	nextID  int
}

func newMockStore(matches ...models.Match) *mockStore {
	return &mockStore{matches: matches, nextID: 1}
}

func (m *mockStore) ListMatches() ([]models.Match, error) {
	return m.matches, nil
}

func (m *mockStore) ListAchievements(playerID int) ([]models.Achievement, error) {
	if playerID == 0 {
		return m.unlocks, nil
	}
	var out []models.Achievement
	for _, u := range m.unlocks {
		if u.PlayerID == playerID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockStore) AddAchievement(playerID int, typeID string, matchID int) (*models.Achievement, error) {
	unlock := models.Achievement{
		ID:         m.nextID,
		PlayerID:   playerID,
		Type:       typeID,
		MatchID:    matchID,
		UnlockedAt: time.Now().UTC(),
	}
	m.nextID++
	m.unlocks = append(m.unlocks, unlock)
	return &unlock, nil
}

func setupTestService(matches ...models.Match) (*Service, *mockStore) {
	store := newMockStore(matches...)
	service := NewService(store, catalog.Default(), logger.Nop())
	return service, store
}

func TestCheckAndUnlock_PersistsNewUnlocks(t *testing.T) {
	service, store := setupTestService(testMatch(1, 0, 3, 0))

	unlocked, err := service.CheckAndUnlock(1, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(unlocked) == 0 {
		t.Fatal("Expected unlocks for a 3-0 debut win")
	}
	if len(store.unlocks) != len(unlocked) {
		t.Errorf("Persisted %d unlocks, returned %d", len(store.unlocks), len(unlocked))
	}
	for _, u := range unlocked {
		if u.MatchID != 1 {
			t.Errorf("Unlock %s references match %d, want 1", u.Type, u.MatchID)
		}
		if u.UnlockedAt.IsZero() {
			t.Errorf("Unlock %s has no timestamp", u.Type)
		}
	}
}

func TestCheckAndUnlock_SecondRunIsEmpty(t *testing.T) {
	service, _ := setupTestService(testMatch(1, 0, 3, 0))

	first, err := service.CheckAndUnlock(1, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("Expected unlocks on first run")
	}

	second, err := service.CheckAndUnlock(1, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("Expected no unlocks on second run, got %v", second)
	}
}

func TestCheckAndUnlock_BothPlayersIndependent(t *testing.T) {
	service, store := setupTestService(testMatch(1, 0, 2, 2))

	if _, err := service.CheckAndUnlock(1, 1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := service.CheckAndUnlock(2, 1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p1, _ := store.ListAchievements(1)
	p2, _ := store.ListAchievements(2)
	if len(p1) == 0 || len(p2) == 0 {
		t.Fatalf("Expected unlocks for both players, got %d and %d", len(p1), len(p2))
	}
}

func TestCheckAndUnlock_UnknownMatch(t *testing.T) {
	service, store := setupTestService(testMatch(1, 0, 1, 0))

	unlocked, err := service.CheckAndUnlock(1, 42)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(unlocked) != 0 || len(store.unlocks) != 0 {
		t.Errorf("Expected nothing for unknown match, got %v", unlocked)
	}
}

func TestCatalogEntries(t *testing.T) {
	service, _ := setupTestService()

	entries := service.CatalogEntries()
	if len(entries) != len(catalog.Default().AchievementTypes()) {
		t.Errorf("Expected full catalog, got %d entries", len(entries))
	}

	entry, ok := service.CatalogEntry("ON_FIRE")
	if !ok {
		t.Fatal("Expected ON_FIRE in catalog")
	}
	if entry.Category != catalog.CategoryStreaks {
		t.Errorf("ON_FIRE category = %s, want streaks", entry.Category)
	}
}
