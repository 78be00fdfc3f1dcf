// Package notify delivers checkout, return and overdue notices to borrowers.
// Every notifier here satisfies library.Notifier.
package notify

import (
	"context"
	"fmt"
)

// Kind identifies the notice being sent.
type Kind string

const (
	KindCheckout Kind = "checkout"
	KindReturn   Kind = "return"
	KindOverdue  Kind = "overdue"
)

// Line renders a notice the way borrowers read it.
func Line(kind Kind, borrower, title string, daysLate int) string {
	switch kind {
	case KindCheckout:
		return fmt.Sprintf("[NOTIFICACIÓN] %s: Préstamo de '%s' realizado exitosamente", borrower, title)
	case KindReturn:
		return fmt.Sprintf("[NOTIFICACIÓN] %s: Devolución de '%s' realizada exitosamente", borrower, title)
	case KindOverdue:
		return fmt.Sprintf("[RECORDATORIO] %s: El libro '%s' tiene %d días de retraso", borrower, title, daysLate)
	default:
		return fmt.Sprintf("[NOTIFICACIÓN] %s: %s", borrower, title)
	}
}

// Notifier is the method set shared by the sinks in this package.
type Notifier interface {
	Checkout(ctx context.Context, borrower, title string)
	Return(ctx context.Context, borrower, title string)
	Overdue(ctx context.Context, borrower, title string, daysLate int)
}

// Multi fans every notice out to each notifier in order.
type Multi []Notifier

func (m Multi) Checkout(ctx context.Context, borrower, title string) {
	for _, n := range m {
		n.Checkout(ctx, borrower, title)
	}
}

func (m Multi) Return(ctx context.Context, borrower, title string) {
	for _, n := range m {
		n.Return(ctx, borrower, title)
	}
}

func (m Multi) Overdue(ctx context.Context, borrower, title string, daysLate int) {
	for _, n := range m {
		n.Overdue(ctx, borrower, title, daysLate)
	}
}
