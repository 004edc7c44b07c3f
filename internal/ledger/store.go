package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/cleared-dev/spendwise/internal/model"
)

// ErrInvalidUser is returned for usernames that cannot name a ledger.
var ErrInvalidUser = errors.New("invalid username")

// Store reads and appends per-user ledgers.
type Store interface {
	Append(user string, e model.Expense) error
	Load(user string) (model.Ledger, error)
}

// filePrefix is prepended to the username to form a ledger file name.
const filePrefix = "expenses_"

// FileStore keeps one ledger file per user under a root directory.
// Writes are whole-file rewrites with no locking.
type FileStore struct {
	root  string
	codec Codec
	log   *zap.Logger
}

// NewFileStore creates a FileStore rooted at root. A nil codec selects CSV.
func NewFileStore(root string, codec Codec, log *zap.Logger) *FileStore {
	if codec == nil {
		codec = CSVCodec{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{root: root, codec: codec, log: log}
}

// Root returns the storage root directory.
func (s *FileStore) Root() string { return s.root }

// Path returns the ledger file path for user.
func (s *FileStore) Path(user string) (string, error) {
	if err := ValidateUser(user); err != nil {
		return "", err
	}
	return filepath.Join(s.root, filePrefix+user+s.codec.Ext()), nil
}

// Load returns the full ledger for user. A missing or zero-length file is an
// empty ledger.
func (s *FileStore) Load(user string) (model.Ledger, error) {
	path, err := s.Path(user)
	if err != nil {
		return model.Ledger{}, err
	}

	expenses, err := s.read(path)
	if err != nil {
		return model.Ledger{}, err
	}

	s.log.Debug("ledger loaded",
		zap.String("user", user),
		zap.String("path", path),
		zap.Int("records", len(expenses)))

	return model.Ledger{User: user, Expenses: expenses}, nil
}

// Append adds e to the end of the user's ledger and rewrites the file.
func (s *FileStore) Append(user string, e model.Expense) error {
	path, err := s.Path(user)
	if err != nil {
		return err
	}

	expenses, err := s.read(path)
	if err != nil {
		return err
	}
	expenses = append(expenses, e)

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger %s: %w", path, err)
	}
	defer f.Close()

	if err := s.codec.Encode(f, expenses); err != nil {
		return fmt.Errorf("writing ledger %s: %w", path, err)
	}

	s.log.Debug("expense appended",
		zap.String("user", user),
		zap.String("category", string(e.Category)),
		zap.String("amount", e.Amount.String()),
		zap.Int("records", len(expenses)))

	return f.Close()
}

func (s *FileStore) read(path string) ([]model.Expense, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat ledger %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, nil
	}

	expenses, err := s.codec.Decode(f)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
			return nil, perr
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	return expenses, nil
}

// ValidateUser rejects usernames that are empty or would escape the root.
func ValidateUser(user string) error {
	switch {
	case strings.TrimSpace(user) == "":
		return fmt.Errorf("%w: empty", ErrInvalidUser)
	case strings.ContainsAny(user, `/\`), strings.Contains(user, ".."):
		return fmt.Errorf("%w: %q", ErrInvalidUser, user)
	}
	return nil
}
