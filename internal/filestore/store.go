// Package filestore keeps one ledger record per account as a JSON file under
// a root directory.
//
// The file of account "Alice" is "<root>/Konto Alice.json". Names are path
// escaped so any account name maps to a single file inside root. Writes go to
// a temporary file that is renamed over the record, so a reader never sees a
// partially written record.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-petr/private-bank/internal/domain"
	"github.com/rs/zerolog"
)

const (
	filePrefix = "Konto "
	fileSuffix = ".json"
	tmpPattern = ".konto-*.tmp"
)

// Store facilitates file repository layer logic.
type Store struct {
	root string
}

// New returns a store rooted at root, creating the directory when needed.
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}

	return &Store{root: root}, nil
}

// Root returns the storage directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) path(account string) string {
	return filepath.Join(s.root, filePrefix+url.PathEscape(account)+fileSuffix)
}

// ErrBadFileName indicates a ledger file whose name is not the escaped form
// of any account name. Save and Delete would never touch such a file.
var ErrBadFileName = errors.New("ledger file name is not canonical")

// accountOf returns the account stored in the file with the given base name.
// It reports false for files that are not ledger files.
func accountOf(base string) (string, bool, error) {
	if !strings.HasPrefix(base, filePrefix) || !strings.HasSuffix(base, fileSuffix) {
		return "", false, nil
	}

	stem := strings.TrimSuffix(strings.TrimPrefix(base, filePrefix), fileSuffix)

	name, err := url.PathUnescape(stem)
	if err != nil || url.PathEscape(name) != stem {
		return "", true, fmt.Errorf("%w: %q", ErrBadFileName, base)
	}

	return name, true, nil
}

// List reads every ledger file in root. Other files are ignored, a ledger
// file with a non-canonical name fails the whole listing.
func (s *Store) List(ctx context.Context) ([]domain.LedgerRecord, error) {
	l := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(s.root)
	if err != nil {
		l.Error().Err(err).Str("root", s.root).Send()
		return nil, err
	}

	records := make([]domain.LedgerRecord, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name, ok, err := accountOf(e.Name())
		if err != nil {
			l.Error().Err(err).Str("root", s.root).Send()
			return nil, err
		}

		if !ok {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.root, e.Name()))
		if err != nil {
			l.Error().Err(err).Str("file", e.Name()).Send()
			return nil, err
		}

		records = append(records, domain.LedgerRecord{Account: name, Data: data})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Account < records[j].Account })

	return records, nil
}

// Save atomically replaces the ledger file of the account.
func (s *Store) Save(ctx context.Context, account string, data []byte) error {
	l := zerolog.Ctx(ctx)

	f, err := os.CreateTemp(s.root, tmpPattern)
	if err != nil {
		l.Error().Err(err).Str("account", account).Send()
		return err
	}

	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		l.Error().Err(err).Str("account", account).Send()

		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		l.Error().Err(err).Str("account", account).Send()

		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		l.Error().Err(err).Str("account", account).Send()

		return err
	}

	if err := os.Rename(tmp, s.path(account)); err != nil {
		os.Remove(tmp)
		l.Error().Err(err).Str("account", account).Send()

		return err
	}

	return nil
}

// Delete removes the ledger file of the account. A missing file is not an error.
func (s *Store) Delete(ctx context.Context, account string) error {
	err := os.Remove(s.path(account))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		zerolog.Ctx(ctx).Error().Err(err).Str("account", account).Send()
		return err
	}

	return nil
}
