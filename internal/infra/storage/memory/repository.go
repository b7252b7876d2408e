package memory

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
)

// Repository хранилище коллекций в памяти процесса
// Используется в тестах и для запуска без внешнего хранилища
type Repository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewRepository создает пустое хранилище в памяти
func NewRepository() *Repository {
	return &Repository{data: make(map[string][]byte)}
}

// Get возвращает копию сохранённого значения
func (r *Repository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payload, ok := r.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return clone(payload), nil
}

// PutBatch заменяет значения всех ключей пакета под одной блокировкой
func (r *Repository) PutBatch(_ context.Context, entries []kv.Entry) error {
	for _, e := range entries {
		if err := kv.ValidateKey(e.Key); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range entries {
		r.data[e.Key] = clone(e.Payload)
	}
	return nil
}

// Clear удаляет все ключи
func (r *Repository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = make(map[string][]byte)
	return nil
}

// Close ничего не освобождает
func (r *Repository) Close() error { return nil }

// Set записывает сырое значение в обход проверок; нужен тестам повреждённых данных
func (r *Repository) Set(key string, payload []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = clone(payload)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
