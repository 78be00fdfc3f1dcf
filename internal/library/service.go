// Package library runs the loan workflow: cataloguing books, searching them,
// lending and returning copies, and reminding borrowers of overdue loans.
//
// A book moves between two states. Checkout takes an available book on loan;
// returning the loan makes it available again. Validation failures are
// reported in Result.Errors and never touch the repository.
package library

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"library/internal/entity"
	"library/internal/search"
	"library/internal/validation"
)

// Service provides the library operations over a Repository.
type Service struct {
	repo     Repository
	notifier Notifier
	registry *search.Registry
	logger   *slog.Logger
	now      func() time.Time
	loanDays int
}

// NewService creates a library service. Without options it searches with the
// default criteria, uses the wall clock, a 14 day loan period and discards
// logs.
func NewService(repo Repository, notifier Notifier, opts ...Option) (*Service, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}
	if notifier == nil {
		return nil, ErrNilNotifier
	}
	s := &Service{
		repo:     repo,
		notifier: notifier,
		registry: search.NewDefaultRegistry(),
		logger:   discardLogger(),
		now:      time.Now,
		loanDays: DefaultLoanDays,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddBook validates and catalogues a new, available book.
func (s *Service) AddBook(ctx context.Context, title, author, isbn string) Result {
	if errs := validation.Book(title, author, isbn); len(errs) > 0 {
		return failed(errs...)
	}

	book, err := s.repo.AddBook(entity.Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Available: true,
	})
	s.warnPersist(ctx, "add book", err)

	s.logger.InfoContext(ctx, "book added", "book_id", book.ID, "isbn", book.ISBN)
	return Result{
		ID:      book.ID,
		Message: fmt.Sprintf("Book '%s' added successfully (ID: %d)", title, book.ID),
	}
}

// SearchBooks runs the strategy registered under criterion over the whole
// catalogue. An unknown criterion returns search.ErrUnknownCriterion.
func (s *Service) SearchBooks(ctx context.Context, criterion, query string) ([]entity.Book, error) {
	books, err := s.registry.Search(criterion, s.repo.ListBooks(), query)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "books searched", "criterion", criterion, "matches", len(books))
	return books, nil
}

// RegisterSearch adds or replaces a search criterion.
func (s *Service) RegisterSearch(name string, strategy search.Strategy) error {
	return s.registry.Register(name, strategy)
}

// Criteria lists the registered search criteria.
func (s *Service) Criteria() []string {
	return s.registry.Criteria()
}

// Checkout lends an available book to borrower. The borrower name is checked
// before the book is looked up.
func (s *Service) Checkout(ctx context.Context, bookID int, borrower string) Result {
	if errs := validation.Borrower(borrower); len(errs) > 0 {
		return failed(errs...)
	}

	book := s.findBook(bookID)
	if errs := validation.BookAvailable(book); len(errs) > 0 {
		return failed(errs...)
	}

	loan, err := s.repo.AddLoan(entity.Loan{
		BookID:   book.ID,
		Borrower: borrower,
		Date:     entity.Day(s.now()),
	})
	s.warnPersist(ctx, "add loan", err)

	book.Available = false
	s.warnPersist(ctx, "update book", s.repo.UpdateBook(*book))

	s.notifier.Checkout(ctx, borrower, book.Title)
	s.logger.InfoContext(ctx, "book checked out", "book_id", book.ID, "loan_id", loan.ID)

	return Result{
		ID:      loan.ID,
		Message: fmt.Sprintf("Loan issued to %s (Loan ID: %d)", borrower, loan.ID),
	}
}

// ReturnLoan closes an active loan and makes its book available again. A loan
// whose book no longer resolves is still closed, without a notice.
func (s *Service) ReturnLoan(ctx context.Context, loanID int) Result {
	loan := s.findLoan(loanID)
	if errs := validation.LoanExists(loan); len(errs) > 0 {
		return failed(errs...)
	}

	book := s.findBook(loan.BookID)
	if book != nil {
		book.Available = true
		s.warnPersist(ctx, "update book", s.repo.UpdateBook(*book))
	}

	loan.Returned = true
	s.warnPersist(ctx, "update loan", s.repo.UpdateLoan(*loan))

	if book != nil {
		s.notifier.Return(ctx, loan.Borrower, book.Title)
	} else {
		s.logger.WarnContext(ctx, "returned loan references a missing book", "loan_id", loan.ID, "book_id", loan.BookID)
	}
	s.logger.InfoContext(ctx, "book returned", "loan_id", loan.ID)

	return Result{ID: loan.ID, Message: "Book returned successfully"}
}

// ListBooks returns the whole catalogue in insertion order.
func (s *Service) ListBooks(context.Context) []entity.Book {
	return s.repo.ListBooks()
}

// ListAvailableBooks returns the books that can be lent.
func (s *Service) ListAvailableBooks(context.Context) []entity.Book {
	return s.repo.ListAvailableBooks()
}

// ListActiveLoans returns the loans not yet returned.
func (s *Service) ListActiveLoans(context.Context) []entity.Loan {
	return s.repo.ListActiveLoans()
}

// RemindOverdue sends an overdue notice for every active loan kept longer
// than the loan period and returns how many were sent. Loans whose book no
// longer resolves are skipped.
func (s *Service) RemindOverdue(ctx context.Context) int {
	now := s.now()
	sent := 0
	for _, loan := range s.repo.ListActiveLoans() {
		late := loan.DaysOverdue(now, s.loanDays)
		if late == 0 {
			continue
		}
		book := s.findBook(loan.BookID)
		if book == nil {
			continue
		}
		s.notifier.Overdue(ctx, loan.Borrower, book.Title, late)
		sent++
	}
	s.logger.InfoContext(ctx, "overdue reminders sent", "count", sent)
	return sent
}

func (s *Service) findBook(id int) *entity.Book {
	b, err := s.repo.GetBook(id)
	if err != nil {
		return nil
	}
	return &b
}

func (s *Service) findLoan(id int) *entity.Loan {
	l, err := s.repo.GetLoan(id)
	if err != nil {
		return nil
	}
	return &l
}

// warnPersist logs a storage failure without failing the operation.
func (s *Service) warnPersist(ctx context.Context, op string, err error) {
	if err == nil {
		return
	}
	s.logger.WarnContext(ctx, "persistence failed", "op", op, "error", err)
}
