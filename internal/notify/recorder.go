package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one delivered notice.
type Event struct {
	ID       uuid.UUID `json:"id"`
	Kind     Kind      `json:"kind"`
	Borrower string    `json:"borrower"`
	Title    string    `json:"title"`
	DaysLate int       `json:"days_late,omitempty"`
	Line     string    `json:"line"`
	SentAt   time.Time `json:"sent_at"`
}

// Recorder keeps every notice it receives, in order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	now    func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

func (r *Recorder) Checkout(_ context.Context, borrower, title string) {
	r.record(KindCheckout, borrower, title, 0)
}

func (r *Recorder) Return(_ context.Context, borrower, title string) {
	r.record(KindReturn, borrower, title, 0)
}

func (r *Recorder) Overdue(_ context.Context, borrower, title string, daysLate int) {
	r.record(KindOverdue, borrower, title, daysLate)
}

// Events returns a copy of the recorded notices.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Lines returns the rendered text of every recorded notice.
func (r *Recorder) Lines() []string {
	events := r.Events()
	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = e.Line
	}
	return lines
}

func (r *Recorder) record(kind Kind, borrower, title string, daysLate int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Event{
		ID:       uuid.New(),
		Kind:     kind,
		Borrower: borrower,
		Title:    title,
		DaysLate: daysLate,
		Line:     Line(kind, borrower, title, daysLate),
		SentAt:   r.now(),
	})
}
