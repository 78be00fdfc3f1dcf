package library

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"library/internal/search"
)

// DefaultLoanDays is the loan period used when none is configured.
const DefaultLoanDays = 14

var (
	ErrNilRepository  = errors.New("repository must not be nil")
	ErrNilNotifier    = errors.New("notifier must not be nil")
	ErrNilClock       = errors.New("clock must not be nil")
	ErrNilLogger      = errors.New("logger must not be nil")
	ErrNilRegistry    = errors.New("search registry must not be nil")
	ErrInvalidLoanDay = errors.New("loan period must be positive")
)

// Option configures a Service.
type Option func(*Service) error

// WithClock sets the time source used for loan dates and overdue checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) error {
		if now == nil {
			return ErrNilClock
		}
		s.now = now
		return nil
	}
}

// WithLogger sets the logger receiving persistence warnings and operation logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			return ErrNilLogger
		}
		s.logger = logger
		return nil
	}
}

// WithRegistry replaces the default search registry.
func WithRegistry(r *search.Registry) Option {
	return func(s *Service) error {
		if r == nil {
			return ErrNilRegistry
		}
		s.registry = r
		return nil
	}
}

// WithLoanPeriod sets how many days a loan may stay out before it is overdue.
func WithLoanPeriod(days int) Option {
	return func(s *Service) error {
		if days <= 0 {
			return ErrInvalidLoanDay
		}
		s.loanDays = days
		return nil
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
