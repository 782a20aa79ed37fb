package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/goalkeeper/internal/models"
)

func setupTestJSONStore(t *testing.T) *JSONStore {
	tempDir := t.TempDir()
	return NewJSONStore(filepath.Join(tempDir, "goalkeeper.json"))
}

func TestJSONStoreLoadMissingFileReturnsDefaults(t *testing.T) {
	store := setupTestJSONStore(t)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(state, models.DefaultState()) {
		t.Errorf("expected default state, got %+v", state)
	}
}

func TestJSONStoreLoadCorruptFileReturnsDefaults(t *testing.T) {
	store := setupTestJSONStore(t)

	if err := os.WriteFile(store.GetConfigPath(), []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(state, models.DefaultState()) {
		t.Errorf("expected default state for corrupt file, got %+v", state)
	}
}

func TestJSONStoreLoadMergesPartialDocument(t *testing.T) {
	store := setupTestJSONStore(t)

	if err := os.WriteFile(store.GetConfigPath(), []byte(`{"user": {"name": "X"}}`), 0600); err != nil {
		t.Fatalf("failed to write partial file: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.User.Name != "X" {
		t.Errorf("expected stored name %q, got %q", "X", state.User.Name)
	}

	defaults := models.DefaultState()
	if state.User.Bio != defaults.User.Bio {
		t.Errorf("expected default bio %q, got %q", defaults.User.Bio, state.User.Bio)
	}
	if state.User.Credits != 0 {
		t.Errorf("expected default credits 0, got %d", state.User.Credits)
	}
	if len(state.CurrentGoals) != 0 || len(state.History) != 0 {
		t.Error("expected empty goals and history from defaults")
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := setupTestJSONStore(t)

	saved := models.AppState{
		User: models.UserProfile{
			Name:      "Tester",
			Bio:       "bio",
			AvatarURL: "data:image/png;base64,abc",
			Credits:   125,
		},
		CurrentGoals: []models.Goal{
			{ID: "g1", Text: "write tests", Completed: true, CreatedAt: 1700000000000},
			{ID: "g2", Text: "go outside", Completed: false, CreatedAt: 1700000001000},
		},
		History: []models.DailyRecord{
			{
				ID:             "r1",
				Date:           "2025-11-14T20:00:00Z",
				Goals:          []models.Goal{{ID: "g0", Text: "old", Completed: true}},
				Score:          80,
				Summary:        "Great job today!",
				CompletionRate: 1,
			},
		},
	}

	if err := store.Save(saved); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", saved, loaded)
	}
}

func TestJSONStoreInitRefusesExistingFile(t *testing.T) {
	store := setupTestJSONStore(t)

	if err := store.Init(); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("expected error when initializing over an existing store")
	}
}
