package ledger

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/spendwise/internal/model"
)

type yamlExpense struct {
	Date        string `yaml:"date"`
	Category    string `yaml:"category"`
	Amount      string `yaml:"amount"`
	Description string `yaml:"description"`
}

// YAMLCodec stores a ledger as a YAML sequence of mappings.
type YAMLCodec struct{}

// Name returns the format name.
func (YAMLCodec) Name() string { return "yaml" }

// Ext returns the file extension, including the dot.
func (YAMLCodec) Ext() string { return ".yaml" }

// Decode reads expenses from a YAML document. An empty document yields none.
func (YAMLCodec) Decode(r io.Reader) ([]model.Expense, error) {
	var rows []yamlExpense
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &ParseError{Err: err}
	}

	var expenses []model.Expense
	for i, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, &ParseError{Err: fmt.Errorf("entry %d: %w", i+1, err)}
		}
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			return nil, &ParseError{Err: fmt.Errorf("entry %d: parsing amount %q: %w", i+1, row.Amount, err)}
		}
		expenses = append(expenses, model.Expense{
			Date:        date,
			Category:    model.Category(row.Category),
			Amount:      amount,
			Description: row.Description,
		})
	}
	return expenses, nil
}

// Encode writes expenses as a YAML sequence.
func (YAMLCodec) Encode(w io.Writer, expenses []model.Expense) error {
	rows := make([]yamlExpense, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, yamlExpense{
			Date:        e.Date.Format(dateFormat),
			Category:    string(e.Category),
			Amount:      formatAmount(e.Amount),
			Description: e.Description,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encoding ledger YAML: %w", err)
	}
	return enc.Close()
}
