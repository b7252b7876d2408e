package storage

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
)

// Metrics интерфейс для учета длительности операций бэкенда
type Metrics interface {
	ObserveStoreOperation(driver, operation string, err error, duration time.Duration)
}

// Instrument оборачивает бэкенд, измеряя каждую операцию
// Отсутствие ключа не считается ошибкой
func Instrument(next kv.Backend, driver string, m Metrics) kv.Backend {
	if m == nil {
		return next
	}
	return &instrumented{next: next, driver: driver, metrics: m}
}

type instrumented struct {
	next    kv.Backend
	driver  string
	metrics Metrics
}

func (b *instrumented) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	payload, err := b.next.Get(ctx, key)
	observed := err
	if errors.Is(err, kv.ErrNotFound) {
		observed = nil
	}
	b.metrics.ObserveStoreOperation(b.driver, "get", observed, time.Since(start))
	return payload, err
}

func (b *instrumented) PutBatch(ctx context.Context, entries []kv.Entry) error {
	start := time.Now()
	err := b.next.PutBatch(ctx, entries)
	b.metrics.ObserveStoreOperation(b.driver, "put_batch", err, time.Since(start))
	return err
}

func (b *instrumented) Clear(ctx context.Context) error {
	start := time.Now()
	err := b.next.Clear(ctx)
	b.metrics.ObserveStoreOperation(b.driver, "clear", err, time.Since(start))
	return err
}

func (b *instrumented) Close() error {
	return b.next.Close()
}
