// Package ledger persists per-user expense ledgers.
package ledger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/spendwise/internal/model"
)

// ErrUnknownFormat is returned when a storage format name is not recognised.
var ErrUnknownFormat = errors.New("unknown ledger format")

// Codec converts a ledger between its in-memory form and a byte stream.
type Codec interface {
	Name() string
	Ext() string
	Decode(r io.Reader) ([]model.Expense, error)
	Encode(w io.Writer, expenses []model.Expense) error
}

// ParseError reports a malformed ledger file.
type ParseError struct {
	Path string
	Line int // 0 when unknown
	Err  error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("malformed ledger")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// CodecByName returns the file codec registered under name ("csv" or "yaml").
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "csv":
		return CSVCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}
