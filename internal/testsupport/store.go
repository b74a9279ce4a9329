package testsupport

import (
	"context"
	"testing"

	"lyricpro/internal/config"
	"lyricpro/internal/history"
)

// MustOpenHistory opens the history store named by cfg and registers cleanup.
func MustOpenHistory(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg.Paths.HistoryDB)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// RecordConversion appends a successful entry for input and output.
func RecordConversion(t testing.TB, store *history.Store, input, output string) history.Entry {
	t.Helper()

	entry, err := store.Record(context.Background(), history.Entry{
		RunID:      "test-run",
		InputPath:  input,
		OutputPath: output,
		Status:     history.StatusSucceeded,
		Groups:     1,
		Slides:     1,
	})
	if err != nil {
		t.Fatalf("store.Record: %v", err)
	}
	return entry
}
