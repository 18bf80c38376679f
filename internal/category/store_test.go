package category

import (
	"errors"
	"testing"

	"imposter_server/internal/domain"
)

func TestListReturnsCatalogSummaries(t *testing.T) {
	s := NewStore()

	list := s.List()
	if len(list) == 0 {
		t.Fatal("empty built-in catalog")
	}

	for _, c := range list {
		if c.ID == "" || c.Name == "" {
			t.Fatalf("catalog entry missing id or name: %+v", c)
		}
	}

	// Listing twice must be stable (the client caches it).
	again := s.List()
	for i := range list {
		if list[i] != again[i] {
			t.Fatalf("catalog order not stable at %d: %v vs %v", i, list[i], again[i])
		}
	}
}

func TestResolveBuiltin(t *testing.T) {
	s := NewStore()

	resolved, err := s.Resolve([]string{"animals", "food"}, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	for _, id := range []string{"animals", "food"} {
		c, ok := resolved[id]
		if !ok {
			t.Fatalf("missing %s", id)
		}
		if len(c.Words) == 0 {
			t.Fatalf("built-in %s has no words", id)
		}
	}
}

func TestResolveCustom(t *testing.T) {
	s := NewStore()

	custom := []domain.Category{
		{ID: "mine-123", Name: "Mine", Words: []domain.WordEntry{{Word: "Thing"}}},
	}

	resolved, err := s.Resolve([]string{"animals", "mine-123"}, custom)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	c, ok := resolved["mine-123"]
	if !ok {
		t.Fatal("custom category not resolved")
	}
	if len(c.Words) != 1 || c.Words[0].Word != "Thing" {
		t.Fatalf("custom words not taken verbatim: %+v", c.Words)
	}
}

func TestResolveUnknownID(t *testing.T) {
	s := NewStore()

	_, err := s.Resolve([]string{"animals", "ghost"}, nil)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("got %v, want ErrCategoryNotFound", err)
	}
}

func TestBuiltinWordsHaveHints(t *testing.T) {
	s := NewStore()

	for id, c := range s.builtin {
		for _, w := range c.Words {
			if w.Word == "" {
				t.Fatalf("category %s has an empty word", id)
			}
			if w.Hint == "" {
				t.Fatalf("built-in word %q in %s has no hint", w.Word, id)
			}
		}
	}
}
