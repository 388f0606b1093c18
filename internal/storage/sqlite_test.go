package storage

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := testStore(t)

	for _, sc := range []int{30, 120, 80} {
		if _, err := store.SaveScore("crawler", sc, false); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	if _, err := store.SaveScore("sokoban", 999, true); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	entries, err := store.TopScores("crawler", 2)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Score != 120 || entries[1].Score != 80 {
		t.Errorf("Expected scores [120 80], got [%d %d]", entries[0].Score, entries[1].Score)
	}
	if entries[0].GameID != "crawler" {
		t.Errorf("Expected crawler entries only, got %q", entries[0].GameID)
	}
}

func TestHighScore(t *testing.T) {
	store := testStore(t)

	hs, err := store.HighScore("crawler")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if hs != 0 {
		t.Errorf("Expected 0 for empty table, got %d", hs)
	}

	store.SaveScore("crawler", 42, false)
	store.SaveScore("crawler", 17, false)

	hs, err = store.HighScore("crawler")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if hs != 42 {
		t.Errorf("Expected 42, got %d", hs)
	}
}

func TestClearScores(t *testing.T) {
	store := testStore(t)
	store.SaveScore("crawler", 10, false)
	store.SaveScore("sokoban", 20, false)

	if err := store.ClearScores("crawler"); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}

	entries, _ := store.TopScores("crawler", 10)
	if len(entries) != 0 {
		t.Errorf("Expected crawler scores cleared, got %d", len(entries))
	}
	entries, _ = store.TopScores("sokoban", 10)
	if len(entries) != 1 {
		t.Errorf("Expected sokoban scores untouched, got %d", len(entries))
	}
}

func TestGameStats(t *testing.T) {
	store := testStore(t)
	store.SaveScore("sokoban", 100, false)
	store.SaveScore("sokoban", 200, true)

	stats, err := store.GetGameStats("sokoban")
	if err != nil {
		t.Fatalf("GetGameStats: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.WinsCount != 1 {
		t.Errorf("Expected 1 win, got %d", stats.WinsCount)
	}
	if stats.HighScore != 200 {
		t.Errorf("Expected high score 200, got %d", stats.HighScore)
	}
	if stats.AvgScore != 150 {
		t.Errorf("Expected avg 150, got %f", stats.AvgScore)
	}
}
