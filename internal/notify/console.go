package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Console prints one line per notice.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Checkout(_ context.Context, borrower, title string) {
	c.print(Line(KindCheckout, borrower, title, 0))
}

func (c *Console) Return(_ context.Context, borrower, title string) {
	c.print(Line(KindReturn, borrower, title, 0))
}

func (c *Console) Overdue(_ context.Context, borrower, title string, daysLate int) {
	c.print(Line(KindOverdue, borrower, title, daysLate))
}

func (c *Console) print(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, line)
}
