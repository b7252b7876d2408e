package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

const (
	tableName = "entity_collections"

	createTableQuery = `CREATE TABLE IF NOT EXISTS entity_collections (
		name       TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

	upsertSuffix = "ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at"
)

// Repository хранит каждую коллекцию одной строкой таблицы entity_collections
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория коллекций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу коллекций, если её нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Get получает payload коллекции по имени
func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := kv.ValidateKey(key); err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select("payload").
		From(tableName).
		Where(squirrel.Eq{"name": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var payload string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan payload: %v", ErrScanRow, err)
	}
	return []byte(payload), nil
}

// PutBatch выполняет upsert всех коллекций в одной транзакции
// Либо записываются все коллекции пакета, либо ни одна
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
		query, args, err := psqlbuilder.Insert(tableName).
			Columns("name", "payload", "updated_at").
			Values(e.Key, string(e.Payload), squirrel.Expr("NOW()")).
			Suffix(upsertSuffix).
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

// Clear удаляет все коллекции
func (r *Repository) Clear(ctx context.Context) error {
	query, args, err := psqlbuilder.Delete(tableName).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Clear - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Clear - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// Close закрывает пул соединений
func (r *Repository) Close() error {
	return r.db.Close()
}
