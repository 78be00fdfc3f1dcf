// Package validation holds the input and state checks the library service
// runs before touching the repository. Every check returns a list of
// user-facing messages; an empty list means the input is valid.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"library/internal/entity"
)

const (
	MsgInvalidTitle    = "Error: invalid title - must be at least 2 characters"
	MsgInvalidAuthor   = "Error: invalid author - must be at least 3 characters"
	MsgInvalidISBN     = "Error: invalid ISBN - must be at least 10 characters"
	MsgInvalidBorrower = "Error: invalid borrower name - must be at least 3 characters"
	MsgLoanNotFound    = "Error: loan not found"
	MsgAlreadyReturned = "Error: book already returned"
	MsgBookNotFound    = "Error: book not found"
	MsgBookUnavailable = "Error: book not available"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type bookInput struct {
	Title  string `validate:"min=2"`
	Author string `validate:"min=3"`
	ISBN   string `validate:"min=10"`
}

type borrowerInput struct {
	Borrower string `validate:"min=3"`
}

// fieldMessages maps a struct field to the message reported when it fails.
var fieldMessages = map[string]string{
	"Title":    MsgInvalidTitle,
	"Author":   MsgInvalidAuthor,
	"ISBN":     MsgInvalidISBN,
	"Borrower": MsgInvalidBorrower,
}

// Book checks the fields of a new catalogue entry. Lengths are counted in
// characters after trimming surrounding whitespace; errors come back in
// title, author, isbn order.
func Book(title, author, isbn string) []string {
	return validateStruct(bookInput{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		ISBN:   strings.TrimSpace(isbn),
	})
}

// Borrower checks a borrower name.
func Borrower(name string) []string {
	return validateStruct(borrowerInput{Borrower: strings.TrimSpace(name)})
}

// LoanExists reports whether loan can be returned.
func LoanExists(loan *entity.Loan) []string {
	if loan == nil {
		return []string{MsgLoanNotFound}
	}
	if loan.Returned {
		return []string{MsgAlreadyReturned}
	}
	return nil
}

// BookAvailable reports whether book can be lent.
func BookAvailable(book *entity.Book) []string {
	if book == nil {
		return []string{MsgBookNotFound}
	}
	if !book.Available {
		return []string{MsgBookUnavailable}
	}
	return nil
}

func validateStruct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = "Error: invalid " + strings.ToLower(fe.Field())
		}
		messages = append(messages, msg)
	}
	return messages
}
