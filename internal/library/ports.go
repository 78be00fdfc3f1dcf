package library

import (
	"context"

	"library/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=library

// Repository defines the contract for book and loan storage. Errors from the
// mutating methods report persistence failures only: the change has already
// been applied in memory when they are returned.
type Repository interface {
	AddBook(book entity.Book) (entity.Book, error)
	GetBook(id int) (entity.Book, error)
	ListBooks() []entity.Book
	ListAvailableBooks() []entity.Book
	UpdateBook(book entity.Book) error
	AddLoan(loan entity.Loan) (entity.Loan, error)
	GetLoan(id int) (entity.Loan, error)
	ListActiveLoans() []entity.Loan
	UpdateLoan(loan entity.Loan) error
}

// Notifier receives loan notices. Implementations must not fail the
// operation that triggered them.
type Notifier interface {
	Checkout(ctx context.Context, borrower, title string)
	Return(ctx context.Context, borrower, title string)
	Overdue(ctx context.Context, borrower, title string, daysLate int)
}
