// Package storage выбирает и настраивает бэкенд хранилища сущностей
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/filesystem"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/postgres"
	redisrepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/redis"
	s3repo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/s3"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/sqlite"
)

// ErrUnknownDriver возвращается для неподдерживаемого имени драйвера
var ErrUnknownDriver = errors.New("storage: unknown driver")

// Open создает бэкенд по имени драйвера из конфигурации
func Open(ctx context.Context, cfg config.StorageConfig) (kv.Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewRepository(), nil

	case config.DriverFilesystem:
		return filesystem.NewRepository(cfg.Filesystem.Root)

	case config.DriverSQLite:
		return sqlite.NewRepository(ctx, cfg.SQLite.Path)

	case config.DriverPostgres:
		db, err := postgres.Connect(ctx, cfg.Postgres.DSN(), postgres.PoolConfig{
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		repo := postgres.NewRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = repo.Close()
			return nil, err
		}
		return repo, nil

	case config.DriverRedis:
		return redisrepo.Connect(ctx, redisrepo.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})

	case config.DriverS3:
		return s3repo.New(ctx, s3repo.Config{
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			Endpoint:        cfg.S3.Endpoint,
			Prefix:          cfg.S3.Prefix,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			PathStyle:       cfg.S3.PathStyle,
		})

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
