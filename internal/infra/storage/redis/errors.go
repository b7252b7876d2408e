package redis

import "errors"

var (
	// ErrConnect возвращается, когда Redis недоступен
	ErrConnect = errors.New("redis.repository: failed to connect")

	// ErrGet возвращается при ошибке чтения ключа
	ErrGet = errors.New("redis.repository: failed to get key")

	// ErrPipeline возвращается при ошибке транзакционной записи
	ErrPipeline = errors.New("redis.repository: failed to execute pipeline")

	// ErrClear возвращается при ошибке удаления ключей
	ErrClear = errors.New("redis.repository: failed to clear keys")
)
