package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library/internal/entity"
)

func catalogue() []entity.Book {
	return []entity.Book{
		{ID: 1, Title: "Cien Años de Soledad", Author: "Gabriel García Márquez", ISBN: "9780060883287", Available: true},
		{ID: 2, Title: "El Principito", Author: "Antoine de Saint-Exupéry", ISBN: "9780156012195", Available: false},
		{ID: 3, Title: "1984", Author: "George Orwell", ISBN: "9780451524935", Available: true},
		{ID: 4, Title: "Crónica de una Muerte Anunciada", Author: "Gabriel García Márquez", ISBN: "9781400034956", Available: true},
	}
}

func ids(books []entity.Book) []int {
	out := make([]int, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestByTitle(t *testing.T) {
	books := catalogue()

	t.Run("case insensitive substring", func(t *testing.T) {
		assert.Equal(t, []int{2}, ids(ByTitle(books, "principito")))
	})

	t.Run("accents ignored", func(t *testing.T) {
		assert.Equal(t, []int{4}, ids(ByTitle(books, "CRONICA")))
	})

	t.Run("empty query matches all", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4}, ids(ByTitle(books, "")))
	})

	t.Run("no match", func(t *testing.T) {
		result := ByTitle(books, "Quijote")
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestByAuthor(t *testing.T) {
	books := catalogue()

	assert.Equal(t, []int{1, 4}, ids(ByAuthor(books, "Garcia")))
	assert.Equal(t, []int{1, 4}, ids(ByAuthor(books, "márquez")))
	assert.Equal(t, []int{3}, ids(ByAuthor(books, "orwell")))
	assert.Len(t, ByAuthor(books, ""), 4)
}

func TestByISBN(t *testing.T) {
	books := catalogue()

	assert.Equal(t, []int{3}, ids(ByISBN(books, "9780451524935")))
	assert.Empty(t, ByISBN(books, "978045152493"))
	assert.Empty(t, ByISBN(books, ""))
}

func TestByAvailability(t *testing.T) {
	books := catalogue()

	tests := []struct {
		query string
		want  []int
	}{
		{"true", []int{1, 3, 4}},
		{"TRUE", []int{1, 3, 4}},
		{"1", []int{1, 3, 4}},
		{"si", []int{1, 3, 4}},
		{"Sí", []int{1, 3, 4}},
		{"yes", []int{1, 3, 4}},
		{"false", []int{2}},
		{"no", []int{2}},
		{"", []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(ByAvailability(books, tt.query)))
		})
	}
}

func TestByKeyword(t *testing.T) {
	books := catalogue()

	t.Run("matches title or author in input order", func(t *testing.T) {
		assert.Equal(t, []int{1, 4}, ids(ByKeyword(books, "gabriel")))
		assert.Equal(t, []int{2}, ids(ByKeyword(books, "principito")))
	})

	t.Run("book matching both appears once", func(t *testing.T) {
		dup := []entity.Book{{ID: 9, Title: "Orwell", Author: "George Orwell"}}
		assert.Equal(t, []int{9}, ids(ByKeyword(dup, "orwell")))
	})
}

func TestStrategiesDoNotModifyInput(t *testing.T) {
	books := catalogue()
	before := catalogue()

	_ = ByTitle(books, "a")
	_ = ByAvailability(books, "false")
	_ = ByKeyword(books, "e")

	assert.Equal(t, before, books)
}

func TestRegistry(t *testing.T) {
	t.Run("default criteria", func(t *testing.T) {
		r := NewDefaultRegistry()
		assert.Equal(t, []string{"author", "available", "isbn", "keyword", "title"}, r.Criteria())
	})

	t.Run("unknown criterion", func(t *testing.T) {
		r := NewDefaultRegistry()
		result, err := r.Search("publisher", catalogue(), "x")
		assert.ErrorIs(t, err, ErrUnknownCriterion)
		assert.Contains(t, err.Error(), "publisher")
		assert.Nil(t, result)
	})

	t.Run("search dispatches by name", func(t *testing.T) {
		r := NewDefaultRegistry()
		result, err := r.Search(CriterionAuthor, catalogue(), "Garcia")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 4}, ids(result))
	})

	t.Run("register custom strategy", func(t *testing.T) {
		r := NewDefaultRegistry()
		prefix := func(books []entity.Book, q string) []entity.Book {
			var out []entity.Book
			for _, b := range books {
				if len(b.ISBN) >= len(q) && b.ISBN[:len(q)] == q {
					out = append(out, b)
				}
			}
			return out
		}
		require.NoError(t, r.Register("isbn_prefix", prefix))

		result, err := r.Search("isbn_prefix", catalogue(), "97801")
		require.NoError(t, err)
		assert.Equal(t, []int{2}, ids(result))
		assert.Contains(t, r.Criteria(), "isbn_prefix")
	})

	t.Run("register replaces existing", func(t *testing.T) {
		r := NewDefaultRegistry()
		none := func([]entity.Book, string) []entity.Book { return nil }
		require.NoError(t, r.Register(CriterionTitle, none))

		result, err := r.Search(CriterionTitle, catalogue(), "")
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		r := NewRegistry()
		err := r.Register("", ByTitle)
		assert.ErrorIs(t, err, ErrEmptyCriterion)
		assert.Empty(t, r.Criteria())
	})

	t.Run("nil strategy rejected", func(t *testing.T) {
		r := NewDefaultRegistry()
		err := r.Register("x", nil)
		assert.ErrorIs(t, err, ErrNilStrategy)
		assert.NotContains(t, r.Criteria(), "x")

		_, err = r.Search("x", catalogue(), "")
		assert.ErrorIs(t, err, ErrUnknownCriterion)
	})

	t.Run("nil strategy keeps existing one", func(t *testing.T) {
		r := NewDefaultRegistry()
		require.Error(t, r.Register(CriterionTitle, nil))

		result, err := r.Search(CriterionTitle, catalogue(), "principito")
		require.NoError(t, err)
		assert.Equal(t, []int{2}, ids(result))
	})
}
