package game

import (
	"errors"
	"testing"

	"imposter_server/internal/category"
	"imposter_server/internal/domain"
)

func testFactory() *Factory {
	return NewFactory(category.NewStore())
}

func singleWordCategory(word, hint string) []domain.Category {
	return []domain.Category{
		{
			ID:    "custom-1",
			Name:  "Test",
			Words: []domain.WordEntry{{Word: word, Hint: hint}},
		},
	}
}

func TestCreateValidation(t *testing.T) {
	f := testFactory()

	cases := []struct {
		name      string
		players   int
		imposters int
		wantErr   error
	}{
		{"too few players", 2, 1, domain.ErrInvalidParameters},
		{"too many players", 21, 1, domain.ErrInvalidParameters},
		{"zero imposters", 5, 0, domain.ErrInvalidParameters},
		{"imposters equal players", 5, 5, domain.ErrInvalidParameters},
		{"imposters above players", 5, 7, domain.ErrInvalidParameters},
		{"minimum game", 3, 1, nil},
		{"maximum game", 20, 19, nil},
	}

	for _, tc := range cases {
		_, err := f.Create([]string{"animals"}, tc.players, tc.imposters, false, nil)
		if tc.wantErr == nil && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestCreateEmptyPool(t *testing.T) {
	f := testFactory()

	empty := []domain.Category{{ID: "empty", Name: "Empty"}}
	if _, err := f.Create([]string{"empty"}, 5, 1, false, empty); !errors.Is(err, domain.ErrEmptyWordPool) {
		t.Fatalf("got %v, want ErrEmptyWordPool", err)
	}
}

func TestCreateUnknownCategory(t *testing.T) {
	f := testFactory()

	if _, err := f.Create([]string{"no-such-id"}, 5, 1, false, nil); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("got %v, want ErrCategoryNotFound", err)
	}
}

func TestImposterSeatProperties(t *testing.T) {
	f := testFactory()

	for players := MinPlayers; players <= MaxPlayers; players++ {
		for imposters := 1; imposters < players; imposters++ {
			g, err := f.Create([]string{"animals"}, players, imposters, false, nil)
			if err != nil {
				t.Fatalf("create(%d,%d): %v", players, imposters, err)
			}

			if len(g.ImposterSeats) != imposters {
				t.Fatalf("create(%d,%d): %d seats", players, imposters, len(g.ImposterSeats))
			}

			seen := make(map[int]bool)
			for _, seat := range g.ImposterSeats {
				if seat < 1 || seat > players {
					t.Fatalf("create(%d,%d): seat %d out of range", players, imposters, seat)
				}
				if seen[seat] {
					t.Fatalf("create(%d,%d): duplicate seat %d", players, imposters, seat)
				}
				seen[seat] = true
			}
		}
	}
}

func TestRevealRolesMatchSeats(t *testing.T) {
	f := testFactory()

	if _, err := f.Create(nil, 8, 3, true, nil); err == nil {
		t.Fatal("expected error for empty category list")
	}

	g, err := f.Create([]string{"custom-1"}, 8, 3, true, singleWordCategory("Banana", "Fruit"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	seats := make(map[int]bool)
	for _, s := range g.ImposterSeats {
		seats[s] = true
	}

	for p := 1; p <= g.NumPlayers; p++ {
		res, err := g.Reveal(p)
		if err != nil {
			t.Fatalf("reveal(%d): %v", p, err)
		}

		if seats[p] {
			if res.Role != RoleImposter {
				t.Fatalf("player %d: got role %q, want imposter", p, res.Role)
			}
			if res.Word != "" {
				t.Fatalf("player %d: imposter must not see the word, got %q", p, res.Word)
			}
			if res.Hint != "Fruit" {
				t.Fatalf("player %d: got hint %q, want Fruit", p, res.Hint)
			}
		} else {
			if res.Role != RolePlayer {
				t.Fatalf("player %d: got role %q, want player", p, res.Role)
			}
			if res.Word != "Banana" {
				t.Fatalf("player %d: got word %q, want Banana", p, res.Word)
			}
			if res.Hint != "" {
				t.Fatalf("player %d: player must not get a hint, got %q", p, res.Hint)
			}
		}
	}

	if g.RevealedCount() != g.NumPlayers {
		t.Fatalf("revealed count = %d, want %d", g.RevealedCount(), g.NumPlayers)
	}
}

func TestRevealIdempotent(t *testing.T) {
	f := testFactory()

	g, err := f.Create([]string{"custom-1"}, 5, 2, true, singleWordCategory("Banana", "Fruit"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for p := 1; p <= g.NumPlayers; p++ {
		first, err := g.Reveal(p)
		if err != nil {
			t.Fatalf("reveal(%d): %v", p, err)
		}
		second, err := g.Reveal(p)
		if err != nil {
			t.Fatalf("re-reveal(%d): %v", p, err)
		}
		if first != second {
			t.Fatalf("player %d: reveal not idempotent: %+v vs %+v", p, first, second)
		}
	}
}

func TestRevealInvalidPlayer(t *testing.T) {
	f := testFactory()

	g, err := f.Create([]string{"food"}, 5, 1, false, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, p := range []int{0, -1, 6, 100} {
		if _, err := g.Reveal(p); !errors.Is(err, domain.ErrInvalidPlayer) {
			t.Fatalf("reveal(%d): got %v, want ErrInvalidPlayer", p, err)
		}
	}
}

func TestHintsDisabled(t *testing.T) {
	f := testFactory()

	g, err := f.Create([]string{"custom-1"}, 5, 4, false, singleWordCategory("Banana", "Fruit"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, p := range g.ImposterSeats {
		res, err := g.Reveal(p)
		if err != nil {
			t.Fatalf("reveal(%d): %v", p, err)
		}
		if res.Hint != "" {
			t.Fatalf("hintsEnabled=false but imposter %d got hint %q", p, res.Hint)
		}
	}
}

func TestSolutionMatchesReveals(t *testing.T) {
	f := testFactory()

	g, err := f.Create([]string{"custom-1"}, 6, 2, true, singleWordCategory("Banana", "Fruit"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	word, imposters := g.Solution()
	if word != "Banana" {
		t.Fatalf("solution word = %q, want Banana", word)
	}

	if len(imposters) != 2 {
		t.Fatalf("solution has %d imposters, want 2", len(imposters))
	}
	for i := 1; i < len(imposters); i++ {
		if imposters[i-1] >= imposters[i] {
			t.Fatalf("imposters not sorted ascending: %v", imposters)
		}
	}

	asSet := make(map[int]bool)
	for _, p := range imposters {
		asSet[p] = true
	}
	for p := 1; p <= g.NumPlayers; p++ {
		res, _ := g.Reveal(p)
		if asSet[p] != (res.Role == RoleImposter) {
			t.Fatalf("player %d: solution set and reveal role disagree", p)
		}
	}
}

func TestWordPoolMergesCategories(t *testing.T) {
	f := testFactory()

	custom := []domain.Category{
		{ID: "c1", Name: "A", Words: []domain.WordEntry{{Word: "Alpha"}}},
		{ID: "c2", Name: "B", Words: []domain.WordEntry{{Word: "Beta"}}},
	}

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		g, err := f.Create([]string{"c1", "c2"}, 4, 1, false, custom)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		seen[g.SecretWord] = true
	}

	if !seen["Alpha"] || !seen["Beta"] {
		t.Fatalf("word selection never crossed categories: %v", seen)
	}
}
