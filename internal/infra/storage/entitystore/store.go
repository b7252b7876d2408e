// Package entitystore хранит коллекции сущностей целиком поверх kv бэкенда
package entitystore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
)

// Причины возврата fallback при чтении
const (
	ReasonAbsent  = "absent"
	ReasonBackend = "backend"
	ReasonDecode  = "decode"
)

// Store хранилище коллекций professionals, slots и appointments
// Вся запись идет под общей блокировкой: Mutate выполняет read-modify-write атомарно
// относительно других вызовов этого Store
type Store struct {
	mu      sync.RWMutex
	backend kv.Backend
	metrics Metrics
	logger  Logger
}

// NewStore создает хранилище поверх бэкенда, metrics может быть nil
func NewStore(backend kv.Backend, metrics Metrics, logger Logger) *Store {
	return &Store{
		backend: backend,
		metrics: metrics,
		logger:  logger,
	}
}

// Read возвращает коллекцию или fallback, если значение отсутствует, недоступно или повреждено
// Ошибка никогда не возвращается вызывающему, только логируется
func Read[T any](ctx context.Context, s *Store, collection domain.Collection, fallback []T) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return load(ctx, s, collection, fallback)
}

// Write полностью заменяет сохранённую коллекцию
func Write[T any](ctx context.Context, s *Store, collection domain.Collection, records []T) error {
	payload, err := encode(records)
	if err != nil {
		return fmt.Errorf("%w: Write - encode %s: %v", ErrPersist, collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.PutBatch(ctx, []kv.Entry{{Key: collection.String(), Payload: payload}}); err != nil {
		s.logger.Error("Write: failed to persist %s: %v", collection, err)
		return fmt.Errorf("%w: Write - %s: %v", ErrPersist, collection, err)
	}
	return nil
}

// ResetAll удаляет все сохранённые коллекции
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Clear(ctx); err != nil {
		s.logger.Error("ResetAll: failed to clear backend: %v", err)
		return fmt.Errorf("%w: %v", ErrReset, err)
	}
	s.logger.Info("ResetAll: all collections cleared")
	return nil
}

// View загружает снимок всех коллекций для чтения
// Изменения снимка не сохраняются
func (s *Store) View(ctx context.Context) *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadSnapshot(ctx)
}

// Mutate загружает снимок, применяет fn и одним пакетом сохраняет изменённые коллекции
// Ошибка fn возвращается как есть, ничего не сохраняется
// Если бэкенд не смог отдать коллекцию, fn не вызывается и ничего не сохраняется
func (s *Store) Mutate(ctx context.Context, fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.loadSnapshotForUpdate(ctx)
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}

	entries, err := snap.dirtyEntries()
	if err != nil {
		return fmt.Errorf("%w: Mutate - encode: %v", ErrPersist, err)
	}
	if len(entries) == 0 {
		return nil
	}

	if err := s.backend.PutBatch(ctx, entries); err != nil {
		s.logger.Error("Mutate: failed to persist %d collection(s): %v", len(entries), err)
		return fmt.Errorf("%w: Mutate: %v", ErrPersist, err)
	}
	return nil
}

func (s *Store) loadSnapshot(ctx context.Context) *Snapshot {
	return newSnapshot(
		load(ctx, s, domain.CollectionProfessionals, []domain.Professional{}),
		load(ctx, s, domain.CollectionSlots, []domain.Slot{}),
		load(ctx, s, domain.CollectionAppointments, []domain.Appointment{}),
	)
}

func (s *Store) loadSnapshotForUpdate(ctx context.Context) (*Snapshot, error) {
	professionals, err := fetch(ctx, s, domain.CollectionProfessionals, []domain.Professional{})
	if err != nil {
		return nil, s.loadFailed(domain.CollectionProfessionals, err)
	}
	slots, err := fetch(ctx, s, domain.CollectionSlots, []domain.Slot{})
	if err != nil {
		return nil, s.loadFailed(domain.CollectionSlots, err)
	}
	appointments, err := fetch(ctx, s, domain.CollectionAppointments, []domain.Appointment{})
	if err != nil {
		return nil, s.loadFailed(domain.CollectionAppointments, err)
	}
	return newSnapshot(professionals, slots, appointments), nil
}

func (s *Store) loadFailed(collection domain.Collection, err error) error {
	s.logger.Error("Mutate: backend failed for %s, mutation aborted: %v", collection, err)
	return fmt.Errorf("%w: Mutate - load %s: %v", ErrPersist, collection, err)
}

// load читает коллекцию без блокировки, вызывающий держит s.mu
// Ошибка бэкенда заменяется fallback
func load[T any](ctx context.Context, s *Store, collection domain.Collection, fallback []T) []T {
	records, err := fetch(ctx, s, collection, fallback)
	if err != nil {
		s.logger.Error("Read: backend failed for %s, using fallback: %v", collection, err)
		s.countFallback(collection, ReasonBackend)
		return fallback
	}
	return records
}

// fetch возвращает fallback для отсутствующей или поврежденной коллекции
// Ошибка бэкенда возвращается вызывающему
func fetch[T any](ctx context.Context, s *Store, collection domain.Collection, fallback []T) ([]T, error) {
	payload, err := s.backend.Get(ctx, collection.String())
	if errors.Is(err, kv.ErrNotFound) {
		s.countFallback(collection, ReasonAbsent)
		return fallback, nil
	}
	if err != nil {
		return nil, err
	}

	records, err := decode[T](payload)
	if err != nil {
		s.logger.Warn("Read: %s is corrupted, using fallback: %v", collection, err)
		s.countFallback(collection, ReasonDecode)
		return fallback, nil
	}
	return records, nil
}

func (s *Store) countFallback(collection domain.Collection, reason string) {
	if s.metrics != nil {
		s.metrics.IncStoreFallback(collection.String(), reason)
	}
}
