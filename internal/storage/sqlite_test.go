package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func mustSave(t *testing.T, store *Store, r RunResult) int64 {
	t.Helper()
	id, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun(%+v) failed: %v", r, err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, RunResult{GameID: "tetris", Lines: 3})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestLines("tetris")
	if err != nil {
		t.Fatalf("BestLines() failed: %v", err)
	}
	if best != 3 {
		t.Errorf("Expected 3 lines after reopen, got %d", best)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, RunResult{GameID: "tetris", Lines: 4, Pieces: 30, Duration: 90 * time.Second})
	mustSave(t, store, RunResult{GameID: "tetris", Lines: 12, Pieces: 70, Duration: 4 * time.Minute})
	mustSave(t, store, RunResult{GameID: "tetris", Lines: 4, Pieces: 41, Duration: 2 * time.Minute})
	mustSave(t, store, RunResult{GameID: "tetris_classic", Lines: 1, Pieces: 12})

	runs, err := store.TopRuns("tetris", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Most lines first, ties broken by pieces
	if runs[0].Lines != 12 {
		t.Errorf("Expected best run to have 12 lines, got %d", runs[0].Lines)
	}
	if runs[1].Pieces != 41 || runs[2].Pieces != 30 {
		t.Errorf("Tie not broken by pieces: %+v", runs)
	}
	if runs[0].Duration != 4*time.Minute {
		t.Errorf("Duration round trip: got %v", runs[0].Duration)
	}
	if runs[0].GameID != "tetris" {
		t.Errorf("GameID = %q", runs[0].GameID)
	}

	classic, err := store.TopRuns("tetris_classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic run, got %d", len(classic))
	}
}

func TestStoreSaveRunRequiresGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(RunResult{Lines: 2}); err == nil {
		t.Error("SaveRun() without game id should fail")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, RunResult{GameID: "tetris", Lines: i + 1})
	}

	runs, err := store.TopRuns("tetris", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Lines != 5 || runs[1].Lines != 4 || runs[2].Lines != 3 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	// Non-positive limits fall back to the default
	all, err := store.TopRuns("tetris", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected all 5 runs with default limit, got %d", len(all))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, RunResult{GameID: "tetris", Lines: 9})
	mustSave(t, store, RunResult{GameID: "tetris_classic", Lines: 1})
	last := mustSave(t, store, RunResult{GameID: "tetris", Lines: 2})

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != last {
		t.Errorf("Expected newest run first, got id %d", runs[0].ID)
	}
	if runs[1].GameID != "tetris_classic" {
		t.Errorf("Expected classic run second, got %q", runs[1].GameID)
	}
}

func TestStoreBestLines(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestLines("tetris")
	if err != nil {
		t.Fatalf("BestLines() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 lines for empty game, got %d", best)
	}

	mustSave(t, store, RunResult{GameID: "tetris", Lines: 10})
	mustSave(t, store, RunResult{GameID: "tetris", Lines: 30})
	mustSave(t, store, RunResult{GameID: "tetris", Lines: 20})

	best, err = store.BestLines("tetris")
	if err != nil {
		t.Fatalf("BestLines() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("Expected best of 30 lines, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, RunResult{GameID: "tetris", Lines: 1})
	mustSave(t, store, RunResult{GameID: "tetris", Lines: 2})
	mustSave(t, store, RunResult{GameID: "tetris_classic", Lines: 3})

	if err := store.ClearRuns("tetris"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("tetris", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	classic, _ := store.TopRuns("tetris_classic", 10)
	if len(classic) != 1 {
		t.Errorf("Classic runs should not be affected by clearing tetris")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, RunResult{GameID: "tetris", Lines: 2, Pieces: 20, Duration: time.Minute})
	mustSave(t, store, RunResult{GameID: "tetris", Lines: 6, Pieces: 40, Duration: 2 * time.Minute})
	mustSave(t, store, RunResult{GameID: "tetris_classic", Lines: 1, Pieces: 9, Duration: time.Second})

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.BestLines != 6 || stats.TotalLines != 8 || stats.TotalPieces != 60 {
		t.Errorf("Unexpected totals: %+v", stats)
	}
	if stats.AvgLines != 4 {
		t.Errorf("AvgLines = %v, expected 4", stats.AvgLines)
	}
	if stats.PlayTime != 3*time.Minute {
		t.Errorf("PlayTime = %v, expected 3m", stats.PlayTime)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["tetris_classic"].TotalPieces != 9 {
		t.Errorf("Classic stats: %+v", all["tetris_classic"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	if got := parseTime("2026-03-01 12:30:00"); !got.Equal(want) {
		t.Errorf("parseTime(sqlite format) = %v", got)
	}
	if got := parseTime(want); !got.Equal(want) {
		t.Errorf("parseTime(time.Time) = %v", got)
	}
	if got := parseTime(42); !got.IsZero() {
		t.Errorf("parseTime(int) = %v, expected zero", got)
	}
}
