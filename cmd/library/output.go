package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"library/internal/entity"
	"library/internal/library"
	"library/internal/notify"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// printer renders command output as plain text or JSON.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

type resultBody struct {
	library.Result
	OK            bool           `json:"ok"`
	Notifications []notify.Event `json:"notifications,omitempty"`
}

type remindBody struct {
	Sent          int            `json:"sent"`
	Notifications []notify.Event `json:"notifications"`
}

func (p *printer) result(r library.Result, events []notify.Event) error {
	if p.format == formatJSON {
		return p.writeJSON(resultBody{Result: r, OK: r.OK(), Notifications: events})
	}
	_, err := fmt.Fprintln(p.w, r.String())
	return err
}

func (p *printer) books(books []entity.Book) error {
	if p.format == formatJSON {
		return p.writeJSON(books)
	}
	if len(books) == 0 {
		_, err := fmt.Fprintln(p.w, "No books found")
		return err
	}
	for _, b := range books {
		status := "available"
		if !b.Available {
			status = "on loan"
		}
		if _, err := fmt.Fprintf(p.w, "[%d] %s - %s (ISBN: %s) %s\n", b.ID, b.Title, b.Author, b.ISBN, status); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) loans(loans []entity.Loan) error {
	if p.format == formatJSON {
		return p.writeJSON(loans)
	}
	if len(loans) == 0 {
		_, err := fmt.Fprintln(p.w, "No active loans")
		return err
	}
	for _, l := range loans {
		if _, err := fmt.Fprintf(p.w, "[%d] book %d - %s since %s\n", l.ID, l.BookID, l.Borrower, l.Date.Format(entity.DateLayout)); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) reminders(sent int, events []notify.Event) error {
	if p.format == formatJSON {
		if events == nil {
			events = []notify.Event{}
		}
		return p.writeJSON(remindBody{Sent: sent, Notifications: events})
	}
	_, err := fmt.Fprintf(p.w, "Reminders sent: %d\n", sent)
	return err
}

func (p *printer) criteria(names []string) error {
	if p.format == formatJSON {
		return p.writeJSON(names)
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(p.w, n); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) line(format string, args ...any) {
	if p.format == formatText {
		fmt.Fprintf(p.w, format+"\n", args...)
	}
}

// metrics writes the gathered counters in the Prometheus text format.
func (p *printer) metrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(p.w, mf); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}
