package ledger

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DBFile is the database file name used by the sqlite format.
const DBFile = "spendwise.db"

// Open returns the Store for a storage format ("csv", "yaml" or "sqlite")
// rooted at root, together with a function releasing its resources.
func Open(format, root string, log *zap.Logger) (Store, func() error, error) {
	if strings.EqualFold(strings.TrimSpace(format), "sqlite") {
		s, err := OpenSQLite(filepath.Join(root, DBFile), log)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}

	codec, err := CodecByName(format)
	if err != nil {
		return nil, nil, err
	}
	return NewFileStore(root, codec, log), func() error { return nil }, nil
}
