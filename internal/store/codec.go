package store

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"library/internal/entity"
)

// Record tags of the backing file. Each record is one line of six
// pipe-separated fields:
//
//	LIBRO|<id>|<title>|<author>|<isbn>|<available>
//	PRESTAMO|<id>|<book_id>|<borrower>|<YYYY-MM-DD>|<returned>
const (
	tagBook = "LIBRO"
	tagLoan = "PRESTAMO"

	fieldSep    = "|"
	fieldsInRow = 6
)

var sanitizer = strings.NewReplacer(fieldSep, " ", "\r", " ", "\n", " ")

func encode(st *state) []byte {
	var buf bytes.Buffer
	for _, id := range st.bookOrder {
		b := st.books[id]
		writeRow(&buf, tagBook,
			strconv.Itoa(b.ID),
			b.Title,
			b.Author,
			b.ISBN,
			strconv.FormatBool(b.Available),
		)
	}
	for _, id := range st.loanOrder {
		l := st.loans[id]
		writeRow(&buf, tagLoan,
			strconv.Itoa(l.ID),
			strconv.Itoa(l.BookID),
			l.Borrower,
			l.Date.Format(entity.DateLayout),
			strconv.FormatBool(l.Returned),
		)
	}
	return buf.Bytes()
}

func writeRow(buf *bytes.Buffer, tag string, fields ...string) {
	buf.WriteString(tag)
	for _, f := range fields {
		buf.WriteString(fieldSep)
		buf.WriteString(sanitizer.Replace(f))
	}
	buf.WriteByte('\n')
}

// decode parses a backing file. Each line is trimmed of surrounding
// whitespace; lines with an unknown tag or the wrong number of fields are
// skipped; a known record with a bad id or date fails the whole
// file.
func decode(data []byte) (*state, error) {
	st := newState()
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		parts := strings.Split(line, fieldSep)
		if len(parts) != fieldsInRow {
			continue
		}

		switch parts[0] {
		case tagBook:
			id, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: book id: %w", n+1, err)
			}
			st.putBook(entity.Book{
				ID:        id,
				Title:     parts[2],
				Author:    parts[3],
				ISBN:      parts[4],
				Available: parseBool(parts[5]),
			})
		case tagLoan:
			id, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: loan id: %w", n+1, err)
			}
			bookID, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: loan book id: %w", n+1, err)
			}
			date, err := time.Parse(entity.DateLayout, parts[4])
			if err != nil {
				return nil, fmt.Errorf("line %d: loan date: %w", n+1, err)
			}
			st.putLoan(entity.Loan{
				ID:       id,
				BookID:   bookID,
				Borrower: parts[3],
				Date:     date,
				Returned: parseBool(parts[5]),
			})
		}
	}
	return st, nil
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true")
}
