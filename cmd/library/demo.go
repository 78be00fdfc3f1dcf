package main

import (
	"context"

	"library/internal/entity"
	"library/internal/search"
)

var seedCatalogue = []entity.Book{
	{Title: "Cien Años de Soledad", Author: "Gabriel García Márquez", ISBN: "9780060883287"},
	{Title: "El Principito", Author: "Antoine de Saint-Exupéry", ISBN: "9780156012195"},
	{Title: "1984", Author: "George Orwell", ISBN: "9780451524935"},
	{Title: "Crónica de una Muerte Anunciada", Author: "Gabriel García Márquez", ISBN: "9781400034956"},
}

// seed adds the starter catalogue to the configured store.
func (a *app) seed(ctx context.Context) int {
	code := exitOK
	for _, b := range seedCatalogue {
		if c := a.result(a.svc.AddBook(ctx, b.Title, b.Author, b.ISBN)); c != exitOK {
			code = c
		}
	}
	a.logger.Info("catalogue seeded", "books", len(seedCatalogue))
	return code
}

// demo walks an in-memory library through a checkout and return.
func (a *app) demo(ctx context.Context) int {
	a.out.line("== Catalogue ==")
	if code := a.seed(ctx); code != exitOK {
		return code
	}

	steps := []struct {
		title     string
		criterion string
		query     string
	}{
		{"Search by author 'Garcia'", search.CriterionAuthor, "Garcia"},
		{"Search by keyword 'principito'", search.CriterionKeyword, "principito"},
		{"Search available books", search.CriterionAvailable, "true"},
	}
	for _, s := range steps {
		a.out.line("== %s ==", s.title)
		books, err := a.svc.SearchBooks(ctx, s.criterion, s.query)
		if err != nil {
			a.logger.Error("demo search", "criterion", s.criterion, "error", err)
			return exitFailed
		}
		if code := a.print(a.out.books(books)); code != exitOK {
			return code
		}
	}

	a.out.line("== Checkout ==")
	loan := a.svc.Checkout(ctx, 1, "Juan Pérez")
	if code := a.result(loan); code != exitOK {
		return code
	}
	a.out.line("== Available after checkout ==")
	if code := a.print(a.out.books(a.svc.ListAvailableBooks(ctx))); code != exitOK {
		return code
	}

	a.out.line("== Return ==")
	if code := a.result(a.svc.ReturnLoan(ctx, loan.ID)); code != exitOK {
		return code
	}
	a.out.line("== Available after return ==")
	return a.print(a.out.books(a.svc.ListAvailableBooks(ctx)))
}
