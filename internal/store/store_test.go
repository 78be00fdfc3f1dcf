package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library/internal/entity"
)

// repository is the operation set both implementations provide.
type repository interface {
	AddBook(entity.Book) (entity.Book, error)
	GetBook(id int) (entity.Book, error)
	ListBooks() []entity.Book
	ListAvailableBooks() []entity.Book
	UpdateBook(entity.Book) error
	AddLoan(entity.Loan) (entity.Loan, error)
	GetLoan(id int) (entity.Loan, error)
	ListActiveLoans() []entity.Loan
	UpdateLoan(entity.Loan) error
}

func implementations(t *testing.T) map[string]repository {
	f, err := OpenFile(t.TempDir() + "/biblioteca.txt")
	require.NoError(t, err)
	return map[string]repository{
		"memory": NewMemory(),
		"file":   f,
	}
}

func date(s string) time.Time {
	d, _ := time.Parse(entity.DateLayout, s)
	return d
}

func TestRepository_Books(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			first, err := repo.AddBook(entity.Book{Title: "1984", Author: "George Orwell", ISBN: "9780451524935", Available: true})
			require.NoError(t, err)
			assert.Equal(t, 1, first.ID)

			second, err := repo.AddBook(entity.Book{ID: 99, Title: "El Principito", Author: "Antoine de Saint-Exupéry", ISBN: "9780156012195", Available: true})
			require.NoError(t, err)
			assert.Equal(t, 2, second.ID, "caller supplied id is ignored")

			got, err := repo.GetBook(2)
			require.NoError(t, err)
			assert.Equal(t, second, got)

			_, err = repo.GetBook(3)
			assert.ErrorIs(t, err, ErrNotFound)

			second.Available = false
			require.NoError(t, repo.UpdateBook(second))

			assert.Equal(t, []entity.Book{first, second}, repo.ListBooks())
			assert.Equal(t, []entity.Book{first}, repo.ListAvailableBooks())
		})
	}
}

func TestRepository_UpdateUnknownIsNoop(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.UpdateBook(entity.Book{ID: 7, Title: "Ghost"}))
			require.NoError(t, repo.UpdateLoan(entity.Loan{ID: 7, BookID: 1}))

			assert.Empty(t, repo.ListBooks())
			assert.Empty(t, repo.ListActiveLoans())
			_, err := repo.GetBook(7)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestRepository_Loans(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			l1, err := repo.AddLoan(entity.Loan{BookID: 1, Borrower: "Juan Pérez", Date: date("2024-03-01")})
			require.NoError(t, err)
			l2, err := repo.AddLoan(entity.Loan{BookID: 2, Borrower: "María García", Date: date("2024-03-02")})
			require.NoError(t, err)
			assert.Equal(t, 1, l1.ID)
			assert.Equal(t, 2, l2.ID)

			got, err := repo.GetLoan(1)
			require.NoError(t, err)
			assert.Equal(t, l1, got)

			_, err = repo.GetLoan(5)
			assert.ErrorIs(t, err, ErrNotFound)

			l1.Returned = true
			require.NoError(t, repo.UpdateLoan(l1))
			assert.Equal(t, []entity.Loan{l2}, repo.ListActiveLoans())

			l3, err := repo.AddLoan(entity.Loan{BookID: 1, Borrower: "Ana", Date: date("2024-03-05")})
			require.NoError(t, err)
			assert.Equal(t, 3, l3.ID, "ids are never reused")
		})
	}
}

func TestRepository_EmptyListsAreNotNil(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			assert.NotNil(t, repo.ListBooks())
			assert.NotNil(t, repo.ListAvailableBooks())
			assert.NotNil(t, repo.ListActiveLoans())
		})
	}
}

func TestRepository_ReturnedValuesAreCopies(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			b, err := repo.AddBook(entity.Book{Title: "1984", Author: "George Orwell", ISBN: "9780451524935", Available: true})
			require.NoError(t, err)

			books := repo.ListBooks()
			books[0].Available = false

			got, err := repo.GetBook(b.ID)
			require.NoError(t, err)
			assert.True(t, got.Available)
		})
	}
}
