// Package keystore round-trips generated UUIDs through a storage backend and
// reports the order the backend sorts them in. It is used to check that a
// comparator choice matches the engine a table lives in.
package keystore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/Lzww0608/guuid/v2"
	"github.com/Lzww0608/guuid/v2/internal/logging"
)

// Orderer returns the generation positions of ids (0..len-1) in the order a
// backend sorts the ids.
type Orderer interface {
	Order(ctx context.Context, ids []guuid.UUID) ([]int, error)
}

// Memory sorts in process under a comparator.
type Memory struct {
	Comparator guuid.Comparator
}

// Order implements Orderer.
func (m Memory) Order(_ context.Context, ids []guuid.UUID) ([]int, error) {
	// ids are unique, so each sorted id maps back to exactly one position
	index := make(map[guuid.UUID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	sorted := make([]guuid.UUID, len(ids))
	copy(sorted, ids)
	m.Comparator.Sort(sorted)

	out := make([]int, len(sorted))
	for i, id := range sorted {
		out[i] = index[id]
	}
	return out, nil
}

// Inversions counts adjacent pairs in order that are not ascending. Zero means
// the backend order equals generation order.
func Inversions(order []int) int {
	n := 0
	for i := 1; i < len(order); i++ {
		if order[i] < order[i-1] {
			n++
		}
	}
	return n
}

// Options tunes the MySQL store.
type Options struct {
	Table           string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Logger          *slog.Logger
}

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// Store keeps UUIDs in a MySQL BINARY(16) primary key. MySQL compares binary
// strings byte by byte, which is guuid.ComparatorDefault.
type Store struct {
	db     *sql.DB
	table  string
	logger *slog.Logger
}

// NormalizeDSN validates a go-sql-driver/mysql DSN and fills in the settings
// the store relies on.
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("keystore: invalid dsn: %w", err)
	}
	cfg.ParseTime = true
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	return cfg.FormatDSN(), nil
}

// Open creates a Store. No connection is made until the first query.
func Open(dsn string, opts Options) (*Store, error) {
	if !tableName.MatchString(opts.Table) {
		return nil, fmt.Errorf("keystore: table %q is not a plain identifier", opts.Table)
	}
	normalized, err := NormalizeDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", normalized)
	if err != nil {
		return nil, err
	}

	// DB performance and safety tuning
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{
		db:     db,
		table:  opts.Table,
		logger: logger.With("table", opts.Table),
	}, nil
}

// Close closes the underlying pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureTable creates the key table if it does not exist.
func (s *Store) EnsureTable(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS `%s` (id BINARY(16) NOT NULL PRIMARY KEY, pos INT NOT NULL)", s.table))
	if err != nil {
		return fmt.Errorf("keystore: create table: %w", err)
	}
	return nil
}

// Order implements Orderer. It replaces the table contents with ids in a
// single transaction and reads the positions back in primary key order.
func (s *Store) Order(ctx context.Context, ids []guuid.UUID) ([]int, error) {
	start := time.Now()
	if err := s.replace(ctx, ids); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT pos FROM `%s` ORDER BY id", s.table))
	if err != nil {
		return nil, fmt.Errorf("keystore: query: %w", err)
	}
	defer rows.Close()

	out := make([]int, 0, len(ids))
	for rows.Next() {
		var pos int
		if err := rows.Scan(&pos); err != nil {
			return nil, fmt.Errorf("keystore: scan: %w", err)
		}
		out = append(out, pos)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("keystore: rows: %w", err)
	}

	s.logger.Debug("ordered keys", "count", len(out), "elapsed", time.Since(start))
	return out, nil
}

func (s *Store) replace(ctx context.Context, ids []guuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("keystore: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM `%s`", s.table)); err != nil {
		return fmt.Errorf("keystore: clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO `%s` (id, pos) VALUES (?, ?)", s.table))
	if err != nil {
		return fmt.Errorf("keystore: prepare: %w", err)
	}
	defer stmt.Close()

	for i, id := range ids {
		// UUID.Value sends the 16 storage bytes
		if _, err := stmt.ExecContext(ctx, id, i); err != nil {
			return fmt.Errorf("keystore: insert %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("keystore: commit: %w", err)
	}
	s.logger.Debug("stored keys", "count", len(ids))
	return nil
}
