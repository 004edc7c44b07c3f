package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatNumber(in))
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹1,234.50", FormatAmount(decimal.RequireFromString("1234.5"), "₹"))
	assert.Equal(t, "26.00", FormatAmount(decimal.NewFromInt(26), ""))
	assert.Equal(t, "-$0.13", FormatAmount(decimal.RequireFromString("-0.125"), "$"))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "72.2%", FormatPercent(130.0/180.0))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Date", "Category", "Amount"},
		Rows: [][]string{
			{"2025-01-03", "Food", "100.00"},
			{"---"},
			{"2025-01-04", "Travel", "5.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[1], "Date")
	assert.Contains(t, lines[3], "Food")
	assert.Contains(t, lines[5], "Travel")
	// Right-aligned amount column pads on the left.
	assert.Contains(t, lines[5], "   5.00 ")

	for _, l := range lines[1:] {
		assert.Equal(t, len([]rune(stripANSI(lines[0]))), len([]rune(stripANSI(l))), "ragged row %q", l)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderHorizontalBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 20), RenderHorizontalBar(130, 130, 20))
	assert.Equal(t, strings.Repeat("█", 10), RenderHorizontalBar(65, 130, 20))
	assert.Equal(t, "█", RenderHorizontalBar(0.01, 130, 20))
	assert.Equal(t, "", RenderHorizontalBar(5, 0, 20))
}

func TestRenderBarChart(t *testing.T) {
	out := RenderBarChart([]Bar{
		{Label: "Food", Value: 130, Text: "130.00"},
		{Label: "Travel", Value: 50, Text: "50.00"},
	}, 10)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], strings.Repeat("█", 10)+" ")
	assert.Contains(t, lines[0], "130.00")
	assert.Contains(t, lines[1], "Travel")

	assert.Empty(t, RenderBarChart(nil, 10))
}

// stripANSI removes SGR escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	in := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			in = true
		case in && r == 'm':
			in = false
		case !in:
			b.WriteRune(r)
		}
	}
	return b.String()
}
