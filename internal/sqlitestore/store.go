// Package sqlitestore keeps ledger records in a SQLite database through gorm.
package sqlitestore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-petr/private-bank/internal/domain"
	"github.com/go-petr/private-bank/pkg/errorspkg"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Ledger is the table row of one account ledger.
type Ledger struct {
	Account   string `gorm:"primaryKey"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store facilitates SQLite repository layer logic.
type Store struct {
	db *gorm.DB
}

// Open opens the database at path and migrates the ledger table.
// MemoryPath gives a private in-memory database.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	if path == MemoryPath {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("open sqlite %q: %w", path, err)
		}

		// Each connection to ":memory:" is a separate database.
		sqlDB.SetMaxOpenConns(1)
	}

	return New(db)
}

// New migrates the ledger table on db and returns the store.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Ledger{}); err != nil {
		return nil, fmt.Errorf("migrate ledgers: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// List returns every ledger record ordered by account.
func (s *Store) List(ctx context.Context) ([]domain.LedgerRecord, error) {
	var rows []Ledger

	if err := s.db.WithContext(ctx).Order("account").Find(&rows).Error; err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return nil, fmt.Errorf("%w: %v", errorspkg.ErrInternal, err)
	}

	records := make([]domain.LedgerRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, domain.LedgerRecord{Account: r.Account, Data: r.Data})
	}

	return records, nil
}

// Save inserts or replaces the ledger record of the account.
func (s *Store) Save(ctx context.Context, account string, data []byte) error {
	row := Ledger{Account: account, Data: data}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("account", account).Send()
		return fmt.Errorf("%w: %v", errorspkg.ErrInternal, err)
	}

	return nil
}

// Delete removes the ledger record of the account.
func (s *Store) Delete(ctx context.Context, account string) error {
	err := s.db.WithContext(ctx).Where("account = ?", account).Delete(&Ledger{}).Error
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("account", account).Send()
		return fmt.Errorf("%w: %v", errorspkg.ErrInternal, err)
	}

	return nil
}
