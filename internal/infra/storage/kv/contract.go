package kv

import "context"

// Entry одна пара ключ-значение для пакетной записи
type Entry struct {
	Key     string
	Payload []byte
}

// Backend хранилище сырых значений по именованным ключам
// Реализации: memory, filesystem, sqlite, postgres, redis, s3
type Backend interface {
	// Get возвращает сохранённое значение ключа или ErrNotFound, если ключ отсутствует
	Get(ctx context.Context, key string) ([]byte, error)

	// PutBatch полностью заменяет значения переданных ключей
	// Бэкенды с транзакциями применяют пакет атомарно
	PutBatch(ctx context.Context, entries []Entry) error

	// Clear удаляет все ключи хранилища
	Clear(ctx context.Context) error

	// Close освобождает ресурсы бэкенда
	Close() error
}
