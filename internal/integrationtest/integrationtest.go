// Package integrationtest provides db helpers used in integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-petr/private-bank/cmd/httpserver"
	"github.com/go-petr/private-bank/internal/pgstore"
	"github.com/go-petr/private-bank/pkg/configpkg"
	"github.com/go-petr/private-bank/pkg/dbpkg"
	"github.com/rs/zerolog"
)

// SetupServer returns a PostgreSQL backed test server. The ledgers table is
// flushed before the server loads and again after the test. opts adjust the
// loaded config.
func SetupServer(t *testing.T, configPath string, opts ...func(*configpkg.Config)) *httpserver.Server {
	t.Helper()

	config, err := configpkg.Load(configPath)
	if err != nil {
		t.Fatalf(`configpkg.Load(%q) returned error: %v`, configPath, err)
	}

	config.StorageDriver = configpkg.StoragePostgres

	for _, opt := range opts {
		opt(&config)
	}

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	db := SetupDB(t, config.DBDriver, config.DBSource)
	Flush(t, db)

	bank, err := httpserver.NewBank(context.Background(), config, pgstore.NewRepoPGS(db))
	if err != nil {
		t.Fatalf(`httpserver.NewBank() returned error: %v`, err)
	}

	server, err := httpserver.New(bank, zerolog.Nop(), config)
	if err != nil {
		t.Fatalf(`httpserver.New(bank, logger, config) returned error: %v`, err)
	}

	return server
}

// Flush removes every ledger record.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.Exec(`TRUNCATE TABLE ledgers`); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// SetupDB sets up connection with database for testing and then cleans it.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}
