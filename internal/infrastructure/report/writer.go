// Package report renders enriched rates as plain text
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/damon-houk/rate-enrichment/internal/domain/entity"
)

const (
	separatorWidth = 100
	footer         = "That's all folk!"
)

// Writer writes rate listings to an output stream. The first write error is
// kept and returned by Err; later writes are skipped.
type Writer struct {
	out io.Writer
	err error
}

// NewWriter creates a report writer
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) println(s string) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintln(w.out, s)
}

// WriteListing writes the count line followed by one line per rate
func (w *Writer) WriteListing(rates []entity.Rate) {
	w.println(fmt.Sprintf("Qty : %d", len(rates)))
	w.WriteRates(rates)
}

// WriteRates writes one line per rate
func (w *Writer) WriteRates(rates []entity.Rate) {
	for _, r := range rates {
		w.println(r.String())
	}
}

// WriteSeparator writes a line of asterisks
func (w *Writer) WriteSeparator() {
	w.println(strings.Repeat("*", separatorWidth))
}

// WriteFooter writes the closing line
func (w *Writer) WriteFooter() {
	w.println(footer)
}

// Err returns the first write error
func (w *Writer) Err() error {
	return w.err
}
