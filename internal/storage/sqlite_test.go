package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
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

func sampleRun() Run {
	return Run{
		Seed:     42,
		TickRate: 60,
		Ticks:    321,
		Score:    3,
		Mode:     "game-over",
		Config:   "screen:\n  width: 144\n",
		Events: []TickEvent{
			{Tick: 4, Event: core.PointerDownEvent(72, 171)},
			{Tick: 20, Event: core.KeyDownEvent(core.KeySpace)},
			{Tick: 91, Event: core.TimerFiredEvent(1)},
			{Tick: 91, Event: core.KeyDownEvent(core.KeyUp)},
			{Tick: 300, Event: core.QuitEvent()},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

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
	id, err := store.SaveRun(sampleRun())
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.LoadRun(id); err != nil {
		t.Errorf("LoadRun() after reopen failed: %v", err)
	}
}

func TestStoreSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)
	want := sampleRun()

	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.LoadRun(id)
	if err != nil {
		t.Fatalf("LoadRun() failed: %v", err)
	}

	if got.ID != id || got.Seed != want.Seed || got.TickRate != want.TickRate ||
		got.Ticks != want.Ticks || got.Score != want.Score || got.Mode != want.Mode {
		t.Errorf("LoadRun() header = %+v, want %+v", got, want)
	}
	if got.Config != want.Config {
		t.Errorf("Config = %q, want %q", got.Config, want.Config)
	}
	if len(got.Events) != len(want.Events) {
		t.Fatalf("got %d events, want %d", len(got.Events), len(want.Events))
	}
	for i := range want.Events {
		if got.Events[i] != want.Events[i] {
			t.Errorf("event %d = %+v, want %+v", i, got.Events[i], want.Events[i])
		}
	}
}

func TestStoreRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for score := range 5 {
		run := sampleRun()
		run.Score = score
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.Runs(3)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Runs(3) returned %d runs", len(runs))
	}
	for i, want := range []int{4, 3, 2} {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, want %d", i, runs[i].Score, want)
		}
		if runs[i].Events != nil {
			t.Errorf("runs[%d] carries events", i)
		}
	}
}

func TestStoreRunsEmpty(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.Runs(0)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreLoadRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadRun(999)
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("LoadRun(999) error = %v, want ErrRunNotFound", err)
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(sampleRun())
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if _, err := store.LoadRun(id); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("LoadRun() after delete error = %v", err)
	}
	if err := store.DeleteRun(id); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("second DeleteRun() error = %v, want ErrRunNotFound", err)
	}
}
