package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"library/internal/config"
	"library/internal/library"
	"library/internal/notify"
	"library/internal/platform/logging"
	"library/internal/search"
	"library/internal/store"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	formatText  = "text"
	formatJSON  = "json"
	commandHelp = "Command: add, search, checkout, return, books, loans, remind, seed, criteria, demo"
)

type options struct {
	command    string
	configPath string
	storeKind  string
	dataFile   string
	format     string
	metrics    bool

	title     string
	author    string
	isbn      string
	by        string
	query     string
	bookID    int
	borrower  string
	loanID    int
	available bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("library", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.command, "command", "books", commandHelp)
	fs.StringVar(&o.configPath, "config", "", "Path to a library.yaml config file")
	fs.StringVar(&o.storeKind, "store", "", "Repository: memory or file (overrides config)")
	fs.StringVar(&o.dataFile, "data", "", "Backing file for the file store (overrides config)")
	fs.StringVar(&o.format, "format", formatText, "Output format: text or json")
	fs.BoolVar(&o.metrics, "metrics", false, "Print notification counters after the command")

	fs.StringVar(&o.title, "title", "", "Book title for 'add'")
	fs.StringVar(&o.author, "author", "", "Book author for 'add'")
	fs.StringVar(&o.isbn, "isbn", "", "Book ISBN for 'add'")
	fs.StringVar(&o.by, "by", search.CriterionTitle, "Search criterion for 'search'")
	fs.StringVar(&o.query, "q", "", "Search query for 'search'")
	fs.IntVar(&o.bookID, "book", 0, "Book ID for 'checkout'")
	fs.StringVar(&o.borrower, "borrower", "", "Borrower name for 'checkout'")
	fs.IntVar(&o.loanID, "loan", 0, "Loan ID for 'return'")
	fs.BoolVar(&o.available, "available", false, "Only list available books for 'books'")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.format = strings.ToLower(o.format)
	if o.format != formatText && o.format != formatJSON {
		return o, fmt.Errorf("unknown format %q: use text or json", o.format)
	}
	return o, nil
}

// app holds everything one CLI invocation needs.
type app struct {
	svc      *library.Service
	out      *printer
	recorder *notify.Recorder
	registry *prometheus.Registry
	logger   *slog.Logger
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if o.command == "demo" {
		o.storeKind = config.StoreMemory
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	if o.storeKind != "" {
		cfg.Store = o.storeKind
	}
	if o.dataFile != "" {
		cfg.DataFile = o.dataFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	a, err := newApp(cfg, o.format, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "startup: %v\n", err)
		return exitFailed
	}

	ctx = logging.ContextWithRunID(ctx, uuid.New().String())
	start := time.Now()
	defer func() {
		if err := recover(); err != nil {
			a.logger.ErrorContext(ctx, "panic recovered", "command", o.command, "error", err, "stack", string(debug.Stack()))
			code = exitFailed
		}
		a.logger.InfoContext(ctx, "command finished",
			"command", o.command,
			"exit_code", code,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}()

	code = a.dispatch(ctx, o, stderr)
	if o.metrics {
		if err := a.out.metrics(a.registry); err != nil {
			a.logger.Warn("metrics dump failed", "error", err)
		}
	}
	return code
}

func newApp(cfg *config.Config, format string, stdout, stderr io.Writer) (*app, error) {
	logger := logging.New(cfg.Log, stderr)

	repo, err := openRepository(cfg, logger)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	counters, err := notify.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	a := &app{
		out:      newPrinter(stdout, format),
		recorder: notify.NewRecorder(),
		registry: reg,
		logger:   logger,
	}

	// JSON output carries notices in the response body; text output prints
	// them as they happen.
	notifier := notify.Multi{counters, a.recorder}
	if format == formatText {
		notifier = append(notifier, notify.NewConsole(stdout))
	}

	a.svc, err = library.NewService(repo, notifier,
		library.WithLogger(logger),
		library.WithLoanPeriod(cfg.LoanDays),
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func openRepository(cfg *config.Config, logger *slog.Logger) (library.Repository, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return store.NewMemory(), nil
	case config.StoreFile:
		f, err := store.OpenFile(cfg.DataFile)
		if err != nil {
			logger.Warn("starting with an empty library", "path", cfg.DataFile, "error", err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: got %q", config.ErrInvalidStore, cfg.Store)
	}
}

func (a *app) dispatch(ctx context.Context, o options, stderr io.Writer) int {
	switch o.command {
	case "add":
		return a.result(a.svc.AddBook(ctx, o.title, o.author, o.isbn))
	case "search":
		books, err := a.svc.SearchBooks(ctx, o.by, o.query)
		if err != nil {
			fmt.Fprintf(stderr, "%v (criteria: %s)\n", err, strings.Join(a.svc.Criteria(), ", "))
			return exitFailed
		}
		return a.print(a.out.books(books))
	case "checkout":
		return a.result(a.svc.Checkout(ctx, o.bookID, o.borrower))
	case "return":
		return a.result(a.svc.ReturnLoan(ctx, o.loanID))
	case "books":
		if o.available {
			return a.print(a.out.books(a.svc.ListAvailableBooks(ctx)))
		}
		return a.print(a.out.books(a.svc.ListBooks(ctx)))
	case "loans":
		return a.print(a.out.loans(a.svc.ListActiveLoans(ctx)))
	case "remind":
		sent := a.svc.RemindOverdue(ctx)
		return a.print(a.out.reminders(sent, a.recorder.Events()))
	case "criteria":
		return a.print(a.out.criteria(a.svc.Criteria()))
	case "seed":
		return a.seed(ctx)
	case "demo":
		return a.demo(ctx)
	default:
		fmt.Fprintf(stderr, "unknown command: %s. %s\n", o.command, commandHelp)
		return exitUsage
	}
}

func (a *app) result(r library.Result) int {
	if err := a.out.result(r, a.recorder.Events()); err != nil {
		a.logger.Error("write output", "error", err)
		return exitFailed
	}
	if !r.OK() {
		return exitFailed
	}
	return exitOK
}

func (a *app) print(err error) int {
	if err != nil {
		a.logger.Error("write output", "error", err)
		return exitFailed
	}
	return exitOK
}
