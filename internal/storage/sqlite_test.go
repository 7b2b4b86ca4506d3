package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{GameID: "rocket", Score: 40}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("rocket")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 40 {
		t.Errorf("Expected score to survive reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(Run{GameID: "rocket", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{GameID: "rocket_collision", Score: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("rocket", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, s.Score, want[i])
		}
		if s.GameID != "rocket" {
			t.Errorf("scores[%d] belongs to %q", i, s.GameID)
		}
	}

	other, err := store.TopScores("rocket_collision", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 collision lab score, got %d", len(other))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "rocket", Player: "ada", Score: 70, Seed: 12345})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	scores, err := store.TopScores("rocket", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	got := scores[0]
	if got.Player != "ada" || got.Seed != 12345 || got.Score != 70 {
		t.Errorf("Run not stored as saved: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Errorf("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		//nolint:errcheck // test setup
		store.SaveRun(Run{GameID: "rocket", Score: (i + 1) * 100})
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"limit 3", 3, 3},
		{"zero uses default", 0, 5},
		{"limit above count", 50, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores("rocket", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tt.want {
				t.Errorf("Expected %d scores, got %d", tt.want, len(scores))
			}
			if scores[0].Score != 500 {
				t.Errorf("Expected best score first, got %d", scores[0].Score)
			}
		})
	}
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	//nolint:errcheck // test setup
	store.SaveRun(Run{GameID: "rocket", Player: "first", Score: 30})
	//nolint:errcheck // test setup
	store.SaveRun(Run{GameID: "rocket", Player: "second", Score: 30})

	scores, err := store.TopScores("rocket", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Player != "first" {
		t.Errorf("Earlier run should rank first on a tie: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("rocket")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		//nolint:errcheck // test setup
		store.SaveRun(Run{GameID: "rocket", Score: score})
	}

	high, err = store.HighScore("rocket")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	//nolint:errcheck // test setup
	store.SaveRun(Run{GameID: "rocket", Score: 100})
	//nolint:errcheck // test setup
	store.SaveRun(Run{GameID: "rocket", Score: 200})
	//nolint:errcheck // test setup
	store.SaveRun(Run{GameID: "rocket_collision", Score: 300})

	if err := store.ClearScores("rocket"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("rocket", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores("rocket_collision", 10)
	if len(kept) != 1 {
		t.Errorf("Other games should not be affected by clearing")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		//nolint:errcheck // test setup
		store.SaveRun(Run{GameID: "rocket", Score: i * 10})
	}

	scores, err := store.AllScores("rocket")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "rocket", Player: "ada", Score: 30},
		{GameID: "rocket", Player: "bob", Score: 90},
		{GameID: "rocket", Player: "ada", Score: 70},
		{GameID: "rocket_collision", Player: "ada", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.PlayerScores("rocket", "ada", 0)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores for ada, got %d", len(scores))
	}
	if scores[0].Score != 70 || scores[1].Score != 30 {
		t.Errorf("expected [70 30], got [%d %d]", scores[0].Score, scores[1].Score)
	}

	none, err := store.PlayerScores("rocket", "carol", 5)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no scores for carol, got %d", len(none))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("rocket")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	//nolint:errcheck // test setup
	store.SaveRun(Run{GameID: "rocket", Player: "ada", Score: 10})
	//nolint:errcheck // test setup
	store.SaveRun(Run{GameID: "rocket", Player: "ada", Score: 30})
	//nolint:errcheck // test setup
	store.SaveRun(Run{GameID: "rocket", Score: 20})

	stats, err := store.Stats("rocket")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 30 || stats.TotalScore != 60 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %v", stats.AvgScore)
	}
	if stats.Players != 1 {
		t.Errorf("Anonymous runs should not count as players, got %d", stats.Players)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/.rocket/scores.db", filepath.Join(home, ".rocket", "scores.db")},
		{"~", home},
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"~other/scores.db", "~other/scores.db"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
