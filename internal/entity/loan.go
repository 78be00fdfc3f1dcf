package entity

import "time"

// DateLayout is the calendar-date format loans are stored with.
const DateLayout = "2006-01-02"

// Loan links a book to a borrower until it is returned.
// Returned only ever moves from false to true.
type Loan struct {
	ID       int       `json:"id"`
	BookID   int       `json:"book_id"`
	Borrower string    `json:"borrower"`
	Date     time.Time `json:"date"`
	Returned bool      `json:"returned"`
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysOut returns the number of whole days between the loan date and now.
func (l Loan) DaysOut(now time.Time) int {
	days := int(Day(now).Sub(Day(l.Date)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// DaysOverdue returns how many days the loan has exceeded period days.
// Zero means the loan is not overdue, as does a returned loan.
func (l Loan) DaysOverdue(now time.Time, period int) int {
	if l.Returned {
		return 0
	}
	late := l.DaysOut(now) - period
	if late < 0 {
		return 0
	}
	return late
}
