package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
)

const (
	fileSuffix = ".json"
	tmpPattern = ".tmp-*"
)

// Repository хранит каждую коллекцию отдельным JSON-файлом <root>/<key>.json
// Каждый файл заменяется атомарно (временный файл + rename),
// но пакет из нескольких файлов атомарным не является
type Repository struct {
	root string
}

// NewRepository создает хранилище в каталоге root, создавая его при необходимости
func NewRepository(root string) (*Repository, error) {
	if root == "" {
		root = "./data"
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateRoot, err)
	}
	return &Repository{root: root}, nil
}

// Get читает файл коллекции
func (r *Repository) Get(_ context.Context, key string) ([]byte, error) {
	path, err := r.pathFor(key)
	if err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %s: %v", ErrRead, key, err)
	}
	return payload, nil
}

// PutBatch записывает файлы коллекций по очереди
func (r *Repository) PutBatch(ctx context.Context, entries []kv.Entry) error {
	paths := make([]string, len(entries))
	for i, e := range entries {
		path, err := r.pathFor(e.Key)
		if err != nil {
			return err
		}
		paths[i] = path
	}

	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeAtomic(paths[i], e.Payload); err != nil {
			return fmt.Errorf("%w: PutBatch - %s: %v", ErrWrite, e.Key, err)
		}
	}
	return nil
}

// Clear удаляет файлы коллекций сервиса, остальные файлы каталога не трогает
func (r *Repository) Clear(_ context.Context) error {
	for _, collection := range domain.Collections {
		path, err := r.pathFor(collection.String())
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: Clear - %s: %v", ErrRemove, collection, err)
		}
	}
	return nil
}

// Close ничего не освобождает
func (r *Repository) Close() error { return nil }

func (r *Repository) pathFor(key string) (string, error) {
	if err := kv.ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(r.root, strings.TrimSpace(key)+fileSuffix), nil
}

// writeAtomic пишет данные во временный файл рядом с целевым и переименовывает его
func writeAtomic(path string, payload []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), tmpPattern)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
