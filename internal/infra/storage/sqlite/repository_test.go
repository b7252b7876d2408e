package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db", "reservations.db")
	repo, err := NewRepository(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo, path
}

func TestRepository_PutGetClear(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	_, err := repo.Get(ctx, "slots")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, repo.PutBatch(ctx, []kv.Entry{
		{Key: "slots", Payload: []byte(`[{"id":"a"}]`)},
		{Key: "appointments", Payload: []byte(`[]`)},
	}))

	got, err := repo.Get(ctx, "slots")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	// upsert перезаписывает существующую строку
	require.NoError(t, repo.PutBatch(ctx, []kv.Entry{{Key: "slots", Payload: []byte(`[]`)}}))
	got, err = repo.Get(ctx, "slots")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Get(ctx, "slots")
	require.ErrorIs(t, err, kv.ErrNotFound)
	_, err = repo.Get(ctx, "appointments")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestRepository_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepository(t)

	require.NoError(t, repo.PutBatch(ctx, []kv.Entry{{Key: "professionals", Payload: []byte(`[{"id":"p1"}]`)}}))
	require.NoError(t, repo.Close())

	reopened, err := NewRepository(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "professionals")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1"}]`, string(got))
}

func TestRepository_InvalidKeyWritesNothing(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	err := repo.PutBatch(ctx, []kv.Entry{
		{Key: "slots", Payload: []byte(`[]`)},
		{Key: "", Payload: []byte(`[]`)},
	})
	require.ErrorIs(t, err, kv.ErrInvalidKey)

	_, err = repo.Get(ctx, "slots")
	require.ErrorIs(t, err, kv.ErrNotFound)
}
