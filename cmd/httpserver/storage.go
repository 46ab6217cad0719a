package httpserver

import (
	"fmt"

	"github.com/go-petr/private-bank/internal/bankservice"
	"github.com/go-petr/private-bank/internal/filestore"
	"github.com/go-petr/private-bank/internal/memstore"
	"github.com/go-petr/private-bank/internal/pgstore"
	"github.com/go-petr/private-bank/internal/sqlitestore"
	"github.com/go-petr/private-bank/pkg/configpkg"
	"github.com/go-petr/private-bank/pkg/dbpkg"
)

// OpenRepo returns the ledger repo selected by config.StorageDriver and a
// function releasing its resources.
func OpenRepo(config configpkg.Config) (bankservice.Repo, func() error, error) {
	noop := func() error { return nil }

	switch config.StorageDriver {
	case configpkg.StorageFile, "":
		s, err := filestore.New(config.StorageRoot)
		if err != nil {
			return nil, nil, err
		}

		return s, noop, nil
	case configpkg.StorageMemory:
		return memstore.New(), noop, nil
	case configpkg.StoragePostgres:
		db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}

		return pgstore.NewRepoPGS(db), db.Close, nil
	case configpkg.StorageSQLite:
		s, err := sqlitestore.Open(config.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", config.StorageDriver)
	}
}
