package testutil

import (
	"time"

	"library/internal/entity"
)

// Catalogue books used across package tests, without ids.
var (
	CienAnos = entity.Book{
		Title:     "Cien Años de Soledad",
		Author:    "Gabriel García Márquez",
		ISBN:      "9780060883287",
		Available: true,
	}
	Principito = entity.Book{
		Title:     "El Principito",
		Author:    "Antoine de Saint-Exupéry",
		ISBN:      "9780156012195",
		Available: true,
	}
	Orwell1984 = entity.Book{
		Title:     "1984",
		Author:    "George Orwell",
		ISBN:      "9780451524935",
		Available: true,
	}
	Cronica = entity.Book{
		Title:     "Crónica de una Muerte Anunciada",
		Author:    "Gabriel García Márquez",
		ISBN:      "9781400034956",
		Available: true,
	}
)

// Catalogue returns the fixture books in a fresh slice.
func Catalogue() []entity.Book {
	return []entity.Book{CienAnos, Principito, Orwell1984, Cronica}
}

// FixedClock returns a clock that always reports the given date at noon UTC.
func FixedClock(date string) func() time.Time {
	d, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		panic(err)
	}
	t := d.Add(12 * time.Hour)
	return func() time.Time { return t }
}

// Date parses a YYYY-MM-DD date or panics.
func Date(date string) time.Time {
	d, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return d
}
