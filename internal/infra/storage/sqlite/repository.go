package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
)

const (
	tableName = "state"

	createTableQuery = `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`
)

// Repository хранит каждую коллекцию одной строкой таблицы state
// Пакетная запись выполняется в одной транзакции
type Repository struct {
	db *sql.DB
}

// NewRepository открывает (или создает) файл базы и таблицу state
func NewRepository(ctx context.Context, path string) (*Repository, error) {
	if path == "" {
		path = "reservations.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: create dirs: %v", ErrOpen, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	// SQLite допускает только одного писателя
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createTableQuery); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create state table: %v", ErrExecQuery, err)
	}

	return &Repository{db: db}, nil
}

// Get читает payload коллекции
func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := kv.ValidateKey(key); err != nil {
		return nil, err
	}

	query, args, err := squirrel.Select("payload").
		From(tableName).
		Where(squirrel.Eq{"bucket": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan payload: %v", ErrScanRow, err)
	}
	return payload, nil
}

// PutBatch выполняет upsert всех записей в одной транзакции
func (r *Repository) PutBatch(ctx context.Context, entries []kv.Entry) (retErr error) {
	for _, e := range entries {
		if err := kv.ValidateKey(e.Key); err != nil {
			return err
		}
	}
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: PutBatch - begin: %v", ErrTransaction, err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, e := range entries {
		query, args, err := squirrel.Insert(tableName).
			Columns("bucket", "payload").
			Values(e.Key, e.Payload).
			Suffix("ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: PutBatch - build upsert query: %v", ErrBuildQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: PutBatch - upsert %s: %v", ErrExecQuery, e.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: PutBatch - commit: %v", ErrTransaction, err)
	}
	return nil
}

// Clear удаляет все строки таблицы state
func (r *Repository) Clear(ctx context.Context) error {
	query, args, err := squirrel.Delete(tableName).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Clear - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Clear - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// Close закрывает соединение с базой
func (r *Repository) Close() error {
	return r.db.Close()
}
