package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"library/internal/entity"
)

func TestBook(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		author string
		isbn   string
		want   []string
	}{
		{
			name:   "valid",
			title:  "1984",
			author: "George Orwell",
			isbn:   "9780451524935",
		},
		{
			name:   "minimum lengths",
			title:  "It",
			author: "Ana",
			isbn:   "0123456789",
		},
		{
			name:   "all invalid in field order",
			title:  "A",
			author: "AB",
			isbn:   "123",
			want:   []string{MsgInvalidTitle, MsgInvalidAuthor, MsgInvalidISBN},
		},
		{
			name:   "whitespace is trimmed before counting",
			title:  "  A  ",
			author: "George Orwell",
			isbn:   "  123456789  ",
			want:   []string{MsgInvalidTitle, MsgInvalidISBN},
		},
		{
			name: "empty fields",
			want: []string{MsgInvalidTitle, MsgInvalidAuthor, MsgInvalidISBN},
		},
		{
			name:   "accented characters count once",
			title:  "Él",
			author: "Ñoñ",
			isbn:   "9780451524935",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Book(tt.title, tt.author, tt.isbn)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBorrower(t *testing.T) {
	assert.Empty(t, Borrower("Juan Pérez"))
	assert.Empty(t, Borrower("Ana"))
	assert.Equal(t, []string{MsgInvalidBorrower}, Borrower("Al"))
	assert.Equal(t, []string{MsgInvalidBorrower}, Borrower("   "))
	assert.Equal(t, []string{MsgInvalidBorrower}, Borrower(" Al "))
}

func TestLoanExists(t *testing.T) {
	assert.Equal(t, []string{MsgLoanNotFound}, LoanExists(nil))
	assert.Equal(t, []string{MsgAlreadyReturned}, LoanExists(&entity.Loan{ID: 1, Returned: true}))
	assert.Empty(t, LoanExists(&entity.Loan{ID: 1}))
}

func TestBookAvailable(t *testing.T) {
	assert.Equal(t, []string{MsgBookNotFound}, BookAvailable(nil))
	assert.Equal(t, []string{MsgBookUnavailable}, BookAvailable(&entity.Book{ID: 1, Available: false}))
	assert.Empty(t, BookAvailable(&entity.Book{ID: 1, Available: true}))
}
