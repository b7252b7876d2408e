package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
)

const (
	defaultPrefix = "reservations"
	scanBatch     = 100
)

// Config параметры подключения к Redis
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Repository хранит коллекции строковыми ключами <prefix>:<collection>
// Пакетная запись выполняется в MULTI/EXEC
type Repository struct {
	client *goredis.Client
	prefix string
}

// Connect создает клиента и проверяет соединение командой PING
func Connect(ctx context.Context, cfg Config) (*Repository, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrConnect, cfg.Addr, err)
	}
	return NewRepository(client, cfg.Prefix), nil
}

// NewRepository создает репозиторий поверх готового клиента
func NewRepository(client *goredis.Client, prefix string) *Repository {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Repository{client: client, prefix: prefix}
}

// Get читает значение коллекции
func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := kv.ValidateKey(key); err != nil {
		return nil, err
	}

	payload, err := r.client.Get(ctx, r.fullKey(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %s: %v", ErrGet, key, err)
	}
	return payload, nil
}

// PutBatch записывает все коллекции одной транзакцией MULTI/EXEC
func (r *Repository) PutBatch(ctx context.Context, entries []kv.Entry) error {
	for _, e := range entries {
		if err := kv.ValidateKey(e.Key); err != nil {
			return err
		}
	}
	if len(entries) == 0 {
		return nil
	}

	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, e := range entries {
			pipe.Set(ctx, r.fullKey(e.Key), e.Payload, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: PutBatch: %v", ErrPipeline, err)
	}
	return nil
}

// Clear удаляет все ключи с префиксом репозитория
func (r *Repository) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+":*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("%w: Clear - scan: %v", ErrClear, err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("%w: Clear - del: %v", ErrClear, err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close закрывает клиента
func (r *Repository) Close() error {
	return r.client.Close()
}

func (r *Repository) fullKey(key string) string {
	return r.prefix + ":" + key
}
