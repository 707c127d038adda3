package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newTestBoard builds the food/clothing board used across tests
func newTestBoard(t *testing.T) *Board {
	t.Helper()

	b := NewBoard()
	b.AddItem("img/food/plate.png", "food")
	b.AddItem("img/clothing/hanger.png", "clothing")

	food, _ := b.Category("img/food/plate.png")
	food.AddItem("img/food/fries.png", "french fries")
	food.AddItem("img/food/watermelon.png", "watermelon")

	clothing, _ := b.Category("img/clothing/hanger.png")
	clothing.AddItem("img/clothing/shirt.png", "collared shirt")

	return b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	if !b.AtHome() {
		t.Error("new board should start at home")
	}
	if b.CurrentCategoryName() != "" {
		t.Errorf("expected empty category name, got %q", b.CurrentCategoryName())
	}
	if got := b.ListCurrent(); len(got) != 0 {
		t.Errorf("expected empty listing, got %v", got)
	}
}

func TestBoard_Scenario(t *testing.T) {
	b := newTestBoard(t)

	want := []string{"img/food/plate.png", "img/clothing/hanger.png"}
	if diff := cmp.Diff(want, b.ListCurrent()); diff != "" {
		t.Fatalf("home listing mismatch (-want +got):\n%s", diff)
	}

	spoken, err := b.Select("img/food/plate.png")
	if err != nil {
		t.Fatalf("selecting category failed: %v", err)
	}
	if spoken != "" {
		t.Errorf("navigation should speak nothing, got %q", spoken)
	}
	if b.CurrentCategoryName() != "food" {
		t.Errorf("expected category food, got %q", b.CurrentCategoryName())
	}
	if b.CurrentCategoryID() != "img/food/plate.png" {
		t.Errorf("expected current id img/food/plate.png, got %q", b.CurrentCategoryID())
	}

	want = []string{"img/food/fries.png", "img/food/watermelon.png"}
	if diff := cmp.Diff(want, b.ListCurrent()); diff != "" {
		t.Errorf("food listing mismatch (-want +got):\n%s", diff)
	}

	spoken, err = b.Select("img/food/fries.png")
	if err != nil {
		t.Fatalf("selecting item failed: %v", err)
	}
	if spoken != "french fries" {
		t.Errorf("expected %q, got %q", "french fries", spoken)
	}
	if b.CurrentCategoryName() != "food" {
		t.Error("speaking an item must not change the category")
	}

	if _, err := b.Select("img/food/plate.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("self-select should be ErrNotFound, got %v", err)
	}

	b.Reset()
	if b.CurrentCategoryName() != "" {
		t.Errorf("expected home after reset, got %q", b.CurrentCategoryName())
	}
}

func TestBoard_Select(t *testing.T) {
	tests := []struct {
		name      string
		enter     string // category to enter first, "" stays home
		id        string
		wantText  string
		wantErr   bool
		wantState string
	}{
		{
			name:      "navigate from home",
			id:        "img/clothing/hanger.png",
			wantState: "clothing",
		},
		{
			name:      "speak item",
			enter:     "img/clothing/hanger.png",
			id:        "img/clothing/shirt.png",
			wantText:  "collared shirt",
			wantState: "clothing",
		},
		{
			name:      "navigate between categories",
			enter:     "img/clothing/hanger.png",
			id:        "img/food/plate.png",
			wantState: "food",
		},
		{
			name:      "unknown id at home",
			id:        "img/nothing.png",
			wantErr:   true,
			wantState: "",
		},
		{
			name:      "item of another category",
			enter:     "img/clothing/hanger.png",
			id:        "img/food/fries.png",
			wantErr:   true,
			wantState: "clothing",
		},
		{
			name:      "item id at home is not speakable",
			id:        "img/food/fries.png",
			wantErr:   true,
			wantState: "",
		},
		{
			name:      "self select",
			enter:     "img/food/plate.png",
			id:        "img/food/plate.png",
			wantErr:   true,
			wantState: "food",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t)
			if tt.enter != "" {
				if _, err := b.Select(tt.enter); err != nil {
					t.Fatalf("setup select failed: %v", err)
				}
			}

			got, err := b.Select(tt.id)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("expected ErrNotFound, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got != tt.wantText {
				t.Errorf("expected text %q, got %q", tt.wantText, got)
			}
			if b.CurrentCategoryName() != tt.wantState {
				t.Errorf("expected category %q, got %q", tt.wantState, b.CurrentCategoryName())
			}
		})
	}
}

func TestBoard_SelectPrefersCurrentItem(t *testing.T) {
	b := NewBoard()
	b.AddItem("img/food/plate.png", "food")
	b.AddItem("img/snack.png", "snacks")

	food, _ := b.Category("img/food/plate.png")
	// Same identifier as the snacks category key
	food.AddItem("img/snack.png", "a snack please")

	if _, err := b.Select("img/food/plate.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	got, err := b.Select("img/snack.png")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if got != "a snack please" {
		t.Errorf("expected item text, got %q", got)
	}
	if b.CurrentCategoryName() != "food" {
		t.Errorf("expected to stay in food, got %q", b.CurrentCategoryName())
	}
}

func TestBoard_SelfSelectUsesIdentity(t *testing.T) {
	b := NewBoard()
	b.AddItem("a.png", "same")
	b.AddItem("b.png", "same")

	if _, err := b.Select("a.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	// Identical name and contents, different category
	if _, err := b.Select("b.png"); err != nil {
		t.Errorf("moving to a structurally equal category should succeed: %v", err)
	}
	if b.CurrentCategoryID() != "b.png" {
		t.Errorf("expected b.png, got %q", b.CurrentCategoryID())
	}
}

func TestBoard_Reset(t *testing.T) {
	b := newTestBoard(t)

	b.Reset()
	if !b.AtHome() {
		t.Error("reset at home should stay home")
	}

	if _, err := b.Select("img/food/plate.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	b.Reset()
	if !b.AtHome() {
		t.Error("reset should return home")
	}
	if diff := cmp.Diff(b.CategoryIDs(), b.ListCurrent()); diff != "" {
		t.Errorf("home listing mismatch after reset (-want +got):\n%s", diff)
	}
}

func TestBoard_AddItem(t *testing.T) {
	t.Run("at home creates category", func(t *testing.T) {
		b := NewBoard()
		b.AddItem("img/toys/ball.png", "toys")

		if !b.AtHome() {
			t.Error("adding a category must not leave home")
		}
		c, ok := b.Category("img/toys/ball.png")
		if !ok {
			t.Fatal("expected category to be registered")
		}
		if c.Name() != "toys" {
			t.Errorf("expected name toys, got %q", c.Name())
		}
		if c.Len() != 0 {
			t.Errorf("expected empty category, got %d items", c.Len())
		}
	})

	t.Run("inside category adds item", func(t *testing.T) {
		b := newTestBoard(t)
		if _, err := b.Select("img/clothing/hanger.png"); err != nil {
			t.Fatalf("select failed: %v", err)
		}
		b.AddItem("img/clothing/hat.png", "hat")

		want := []string{"img/clothing/shirt.png", "img/clothing/hat.png"}
		if diff := cmp.Diff(want, b.ListCurrent()); diff != "" {
			t.Errorf("listing mismatch (-want +got):\n%s", diff)
		}
		if b.Len() != 2 {
			t.Errorf("item add must not create categories, got %d", b.Len())
		}
	})

	t.Run("at home overwrites existing category", func(t *testing.T) {
		b := newTestBoard(t)
		b.AddItem("img/food/plate.png", "meals")

		c, _ := b.Category("img/food/plate.png")
		if c.Name() != "meals" {
			t.Errorf("expected name meals, got %q", c.Name())
		}
		if c.Len() != 0 {
			t.Errorf("overwritten category should be empty, got %d items", c.Len())
		}
		want := []string{"img/food/plate.png", "img/clothing/hanger.png"}
		if diff := cmp.Diff(want, b.CategoryIDs()); diff != "" {
			t.Errorf("overwrite should keep position (-want +got):\n%s", diff)
		}
	})
}

func TestBoard_HasItem(t *testing.T) {
	b := newTestBoard(t)

	tests := []struct {
		id   string
		want bool
	}{
		{"img/food/plate.png", true},
		{"img/clothing/hanger.png", true},
		{"img/food/fries.png", true},
		{"img/clothing/shirt.png", true},
		{"img/unknown.png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := b.HasItem(tt.id); got != tt.want {
				t.Errorf("HasItem(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}

	// Global check does not depend on the current category
	if _, err := b.Select("img/clothing/hanger.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if !b.HasItem("img/food/fries.png") {
		t.Error("HasItem should see items outside the current category")
	}
}

func TestBoard_CurrentCategoryIDAtHome(t *testing.T) {
	b := newTestBoard(t)
	if id := b.CurrentCategoryID(); id != "" {
		t.Errorf("expected empty id at home, got %q", id)
	}
}
