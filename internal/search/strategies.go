package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"library/internal/entity"
)

// truthy lists the lower-cased queries ByAvailability reads as true.
var truthy = map[string]bool{
	"true": true,
	"1":    true,
	"si":   true,
	"sí":   true,
	"yes":  true,
}

// ByTitle matches books whose title contains query, ignoring case and accents.
func ByTitle(books []entity.Book, query string) []entity.Book {
	q := fold(query)
	return filter(books, func(b entity.Book) bool {
		return strings.Contains(fold(b.Title), q)
	})
}

// ByAuthor matches books whose author contains query, ignoring case and accents.
func ByAuthor(books []entity.Book, query string) []entity.Book {
	q := fold(query)
	return filter(books, func(b entity.Book) bool {
		return strings.Contains(fold(b.Author), q)
	})
}

// ByISBN matches books whose ISBN equals query exactly.
func ByISBN(books []entity.Book, query string) []entity.Book {
	return filter(books, func(b entity.Book) bool {
		return b.ISBN == query
	})
}

// ByAvailability matches books whose availability equals ParseAvailability(query).
func ByAvailability(books []entity.Book, query string) []entity.Book {
	want := ParseAvailability(query)
	return filter(books, func(b entity.Book) bool {
		return b.Available == want
	})
}

// ByKeyword matches on title or author.
var ByKeyword = AnyOf(ByTitle, ByAuthor)

// ParseAvailability reports whether query is one of the accepted truthy tokens.
func ParseAvailability(query string) bool {
	return truthy[strings.ToLower(query)]
}

// AnyOf returns a strategy matching every book that at least one of the given
// strategies matches. Books keep their input order and appear once per input
// occurrence.
func AnyOf(strategies ...Strategy) Strategy {
	return func(books []entity.Book, query string) []entity.Book {
		matched := make(map[entity.Book]bool)
		for _, s := range strategies {
			for _, b := range s(books, query) {
				matched[b] = true
			}
		}
		return filter(books, func(b entity.Book) bool {
			return matched[b]
		})
	}
}

func filter(books []entity.Book, keep func(entity.Book) bool) []entity.Book {
	out := make([]entity.Book, 0, len(books))
	for _, b := range books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// fold strips combining marks and applies Unicode case folding, so "Garcia"
// and "GARCÍA" compare equal.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
