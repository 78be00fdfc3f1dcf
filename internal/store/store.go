// Package store keeps books and loans for the library service. Memory holds
// them in process only; File mirrors every mutation to a pipe-delimited text
// file.
package store

import (
	"errors"
	"sync"

	"library/internal/entity"
)

var (
	// ErrNotFound is returned when a book or loan id is unknown.
	ErrNotFound = errors.New("not found")
	// ErrLoad is returned when a backing file exists but cannot be read or parsed.
	ErrLoad = errors.New("load store")
	// ErrPersist is returned when a mutation could not be written out. The
	// in-memory change has already been applied.
	ErrPersist = errors.New("persist store")
)

// state is the arena shared by both repositories. Ids come from per-type
// counters starting at 1 and are never reused.
type state struct {
	books      map[int]entity.Book
	bookOrder  []int
	loans      map[int]entity.Loan
	loanOrder  []int
	nextBookID int
	nextLoanID int
}

func newState() *state {
	return &state{
		books:      make(map[int]entity.Book),
		loans:      make(map[int]entity.Loan),
		nextBookID: 1,
		nextLoanID: 1,
	}
}

// putBook stores b under its own id, keeping first-seen order.
func (s *state) putBook(b entity.Book) {
	if _, ok := s.books[b.ID]; !ok {
		s.bookOrder = append(s.bookOrder, b.ID)
	}
	s.books[b.ID] = b
	if b.ID >= s.nextBookID {
		s.nextBookID = b.ID + 1
	}
}

func (s *state) putLoan(l entity.Loan) {
	if _, ok := s.loans[l.ID]; !ok {
		s.loanOrder = append(s.loanOrder, l.ID)
	}
	s.loans[l.ID] = l
	if l.ID >= s.nextLoanID {
		s.nextLoanID = l.ID + 1
	}
}

// repo implements the repository operations over a state. save, when set,
// runs after every mutation while the lock is still held.
type repo struct {
	mu   sync.Mutex
	st   *state
	save func(*state) error
}

func (r *repo) persist() error {
	if r.save == nil {
		return nil
	}
	return r.save(r.st)
}

// AddBook assigns the next book id to b and stores it.
func (r *repo) AddBook(b entity.Book) (entity.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.st.nextBookID
	r.st.putBook(b)
	return b, r.persist()
}

// GetBook returns the book with the given id or ErrNotFound.
func (r *repo) GetBook(id int) (entity.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.st.books[id]
	if !ok {
		return entity.Book{}, ErrNotFound
	}
	return b, nil
}

// ListBooks returns every book in insertion order.
func (r *repo) ListBooks() []entity.Book {
	return r.books(func(entity.Book) bool { return true })
}

// ListAvailableBooks returns the books not currently on loan.
func (r *repo) ListAvailableBooks() []entity.Book {
	return r.books(func(b entity.Book) bool { return b.Available })
}

func (r *repo) books(keep func(entity.Book) bool) []entity.Book {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Book, 0, len(r.st.bookOrder))
	for _, id := range r.st.bookOrder {
		if b := r.st.books[id]; keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// UpdateBook replaces the stored book with the same id. Unknown ids are
// ignored.
func (r *repo) UpdateBook(b entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.st.books[b.ID]; ok {
		r.st.books[b.ID] = b
	}
	return r.persist()
}

// AddLoan assigns the next loan id to l and stores it.
func (r *repo) AddLoan(l entity.Loan) (entity.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l.ID = r.st.nextLoanID
	r.st.putLoan(l)
	return l, r.persist()
}

// GetLoan returns the loan with the given id or ErrNotFound.
func (r *repo) GetLoan(id int) (entity.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.st.loans[id]
	if !ok {
		return entity.Loan{}, ErrNotFound
	}
	return l, nil
}

// ListActiveLoans returns the unreturned loans in insertion order.
func (r *repo) ListActiveLoans() []entity.Loan {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Loan, 0, len(r.st.loanOrder))
	for _, id := range r.st.loanOrder {
		if l := r.st.loans[id]; !l.Returned {
			out = append(out, l)
		}
	}
	return out
}

// UpdateLoan replaces the stored loan with the same id. Unknown ids are
// ignored.
func (r *repo) UpdateLoan(l entity.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.st.loans[l.ID]; ok {
		r.st.loans[l.ID] = l
	}
	return r.persist()
}
