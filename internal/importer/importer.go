// Package importer bulk-loads ledger files dropped into an import directory,
// such as the single expenses.csv kept by older versions.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/spendwise/internal/ledger"
	"github.com/cleared-dev/spendwise/internal/model"
)

// Registry maps file extensions to the codec that reads them.
type Registry struct {
	codecs map[string]ledger.Codec
}

// FileInfo describes an importable file in the import directory.
type FileInfo struct {
	Name  string
	Path  string
	Size  int64
	Codec ledger.Codec
}

// NewRegistry creates an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]ledger.Codec)}
}

// Register adds a codec under its extension. Panics on duplicate extension.
func (r *Registry) Register(c ledger.Codec) {
	key := strings.ToLower(c.Ext())
	if _, ok := r.codecs[key]; ok {
		panic("duplicate codec extension: " + key)
	}
	r.codecs[key] = c
}

// Get returns the codec for a file name's extension, or nil.
func (r *Registry) Get(name string) ledger.Codec {
	return r.codecs[strings.ToLower(filepath.Ext(name))]
}

// DefaultRegistry returns a registry with all built-in file codecs.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ledger.CSVCodec{})
	r.Register(ledger.YAMLCodec{})
	return r
}

// ProcessedDir is the subdirectory imported files are moved to.
const ProcessedDir = "processed"

// Scan returns importable files directly inside dir. A missing dir has none.
func (r *Registry) Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		codec := r.Get(e.Name())
		if codec == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name:  e.Name(),
			Path:  filepath.Join(dir, e.Name()),
			Size:  info.Size(),
			Codec: codec,
		})
	}
	return files, nil
}

// Read decodes every expense in a file without storing anything.
func Read(f FileInfo) ([]model.Expense, error) {
	in, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer in.Close()

	if f.Size == 0 {
		return nil, nil
	}

	expenses, err := f.Codec.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name, err)
	}
	return expenses, nil
}

// ImportFile appends every expense in f to the user's ledger, in file order.
// It returns how many expenses were appended; on error the ledger keeps the
// ones appended so far.
func ImportFile(store ledger.Store, user string, f FileInfo) (int, error) {
	expenses, err := Read(f)
	if err != nil {
		return 0, err
	}
	for i, e := range expenses {
		if err := store.Append(user, e); err != nil {
			return i, fmt.Errorf("appending %s entry %d: %w", f.Name, i+1, err)
		}
	}
	return len(expenses), nil
}

// MarkProcessed moves a file from dir to dir/processed/.
func MarkProcessed(dir, fileName string) error {
	src := filepath.Join(dir, fileName)
	dstDir := filepath.Join(dir, ProcessedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
