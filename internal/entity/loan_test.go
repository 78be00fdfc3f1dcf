package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoan_DaysOut(t *testing.T) {
	loan := Loan{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}

	t.Run("same day", func(t *testing.T) {
		assert.Equal(t, 0, loan.DaysOut(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)))
	})

	t.Run("across month boundary", func(t *testing.T) {
		assert.Equal(t, 31, loan.DaysOut(time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)))
	})

	t.Run("clock before loan date", func(t *testing.T) {
		assert.Equal(t, 0, loan.DaysOut(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func TestLoan_DaysOverdue(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		loan Loan
		want int
	}{
		{"within period", Loan{Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)}, 0},
		{"exactly at period", Loan{Date: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)}, 0},
		{"late", Loan{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}, 5},
		{"returned loans are never late", Loan{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Returned: true}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.loan.DaysOverdue(now, 14))
		})
	}
}
