package sqlite

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T, boardPath string) *Store {
	t.Helper()

	store := NewStore(WithDatabasePath(filepath.Join(t.TempDir(), "state.db")))
	if err := store.Open(boardPath); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_CurrentCategory(t *testing.T) {
	store := openTestStore(t, "/boards/board.txt")

	current, err := store.CurrentCategory()
	if err != nil {
		t.Fatalf("CurrentCategory failed: %v", err)
	}
	if current != "" {
		t.Errorf("expected empty current category, got %q", current)
	}

	for _, id := range []string{"img/food/plate.png", "img/clothing/hanger.png", ""} {
		if err := store.SetCurrentCategory(id); err != nil {
			t.Fatalf("SetCurrentCategory(%q) failed: %v", id, err)
		}
		got, err := store.CurrentCategory()
		if err != nil {
			t.Fatalf("CurrentCategory failed: %v", err)
		}
		if got != id {
			t.Errorf("expected %q, got %q", id, got)
		}
	}
}

func TestStore_History(t *testing.T) {
	store := openTestStore(t, "/boards/board.txt")

	spoken := []struct{ cat, item, text string }{
		{"img/food/plate.png", "img/food/fries.png", "french fries"},
		{"img/food/plate.png", "img/food/watermelon.png", "watermelon"},
		{"img/clothing/hanger.png", "img/clothing/shirt.png", "collared shirt"},
	}
	for _, s := range spoken {
		if err := store.RecordSpoken(s.cat, s.item, s.text); err != nil {
			t.Fatalf("RecordSpoken failed: %v", err)
		}
	}

	history, err := store.History(2)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Text != "collared shirt" || history[1].Text != "watermelon" {
		t.Errorf("expected newest first, got %+v", history)
	}
	if history[0].CategoryID != "img/clothing/hanger.png" {
		t.Errorf("unexpected category: %s", history[0].CategoryID)
	}
	if history[0].SpokenAt.IsZero() {
		t.Error("expected spoken time to be set")
	}
}

func TestStore_BoardsAreIsolated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")

	first := NewStore(WithDatabasePath(dbPath))
	if err := first.Open("/boards/one.txt"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer first.Close()

	second := NewStore(WithDatabasePath(dbPath))
	if err := second.Open("/boards/two.txt"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer second.Close()

	if err := first.SetCurrentCategory("img/food/plate.png"); err != nil {
		t.Fatalf("SetCurrentCategory failed: %v", err)
	}
	if err := first.RecordSpoken("img/food/plate.png", "img/food/fries.png", "french fries"); err != nil {
		t.Fatalf("RecordSpoken failed: %v", err)
	}

	current, err := second.CurrentCategory()
	if err != nil {
		t.Fatalf("CurrentCategory failed: %v", err)
	}
	if current != "" {
		t.Errorf("second board should not see first board state, got %q", current)
	}
	history, err := second.History(10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("second board should have no history, got %d", len(history))
	}
}

func TestHashBoardPath(t *testing.T) {
	a := hashBoardPath("/boards/one.txt")
	b := hashBoardPath("/boards/two.txt")

	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %d", len(a))
	}
	if a == b {
		t.Error("different paths should hash differently")
	}
	if a != hashBoardPath("/boards/one.txt") {
		t.Error("hash should be stable")
	}
}
