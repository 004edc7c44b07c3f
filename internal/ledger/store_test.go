package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/spendwise/internal/model"
)

func TestFileStore_LoadUnknownUser(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil, nil)

	l, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", l.User)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
}

func TestFileStore_LoadZeroLengthFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "expenses_bob.csv"), nil, 0o644))

	l, err := NewFileStore(dir, CSVCodec{}, nil).Load("bob")
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())
}

func TestFileStore_AppendPreservesOrder(t *testing.T) {
	s := NewFileStore(t.TempDir(), CSVCodec{}, nil)

	records := []model.Expense{
		expense("Food", "100", "first"),
		expense("Travel", "50", "second"),
		expense("Food", "30", "third, with comma"),
	}

	for i, r := range records {
		before, err := s.Load("alice")
		require.NoError(t, err)

		require.NoError(t, s.Append("alice", r))

		after, err := s.Load("alice")
		require.NoError(t, err)
		require.Len(t, after.Expenses, before.Len()+1)
		for j := range before.Expenses {
			assert.Equal(t, before.Expenses[j].Description, after.Expenses[j].Description)
		}
		assert.Equal(t, records[i].Description, after.Expenses[i].Description)
	}

	l, err := s.Load("alice")
	require.NoError(t, err)
	require.Len(t, l.Expenses, 3)
	assert.Equal(t, "third, with comma", l.Expenses[2].Description)
}

func TestFileStore_CreatesRootAndFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "data")
	s := NewFileStore(root, CSVCodec{}, nil)

	require.NoError(t, s.Append("carol", expense("Other", "1", "")))

	path, err := s.Path("carol")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "expenses_carol.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n2025-01-15,Other,1.00,\n", string(data))
}

func TestFileStore_UsersAreIsolated(t *testing.T) {
	s := NewFileStore(t.TempDir(), CSVCodec{}, nil)
	require.NoError(t, s.Append("alice", expense("Food", "10", "")))
	require.NoError(t, s.Append("bob", expense("Travel", "20", "")))

	a, err := s.Load("alice")
	require.NoError(t, err)
	require.Len(t, a.Expenses, 1)
	assert.Equal(t, model.Category("Food"), a.Expenses[0].Category)

	b, err := s.Load("bob")
	require.NoError(t, err)
	require.Len(t, b.Expenses, 1)
	assert.Equal(t, model.Category("Travel"), b.Expenses[0].Category)
}

func TestFileStore_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expenses_dave.csv")
	require.NoError(t, os.WriteFile(path, []byte("when,what\n1,2\n"), 0o644))

	s := NewFileStore(dir, CSVCodec{}, nil)

	_, err := s.Load("dave")
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "want ParseError, got %v", err)
	assert.Equal(t, path, perr.Path)

	err = s.Append("dave", expense("Food", "1", ""))
	require.True(t, errors.As(err, &perr))

	// A failed append leaves the file untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "when,what\n1,2\n", string(data))
}

func TestFileStore_YAMLCodec(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, YAMLCodec{}, nil)
	require.NoError(t, s.Append("erin", expense("Shopping", "42", "gift, wrapped")))
	require.NoError(t, s.Append("erin", expense("Food", "8", "")))

	_, err := os.Stat(filepath.Join(dir, "expenses_erin.yaml"))
	require.NoError(t, err)

	l, err := s.Load("erin")
	require.NoError(t, err)
	require.Len(t, l.Expenses, 2)
	assert.Equal(t, "gift, wrapped", l.Expenses[0].Description)
	assert.Equal(t, model.Category("Food"), l.Expenses[1].Category)
}

func TestValidateUser(t *testing.T) {
	for _, ok := range []string{"alice", "bob.smith", "user_1"} {
		assert.NoError(t, ValidateUser(ok), ok)
	}
	for _, bad := range []string{"", "  ", "../etc", "a/b", `a\b`, ".."} {
		assert.ErrorIs(t, ValidateUser(bad), ErrInvalidUser, bad)
	}

	s := NewFileStore(t.TempDir(), nil, nil)
	_, err := s.Load("../escape")
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []string{"csv", "yaml", "sqlite"} {
		t.Run(format, func(t *testing.T) {
			s, closeFn, err := Open(format, filepath.Join(dir, format), nil)
			require.NoError(t, err)
			defer func() { require.NoError(t, closeFn()) }()

			require.NoError(t, s.Append("alice", expense("Food", "5", "x")))
			l, err := s.Load("alice")
			require.NoError(t, err)
			assert.Len(t, l.Expenses, 1)
		})
	}

	_, _, err := Open("xml", dir, nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
