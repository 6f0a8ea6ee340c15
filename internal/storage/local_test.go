package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DrekStyler/handypro-api/internal/domain"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	ctx := context.Background()

	ref, err := store.Upload(ctx, "logos/user1/logo.png", []byte("png-bytes"), "image/png")
	assert.NoError(t, err)
	assert.Equal(t, "local://logos/user1/logo.png", ref)

	data, err := os.ReadFile(filepath.Join(store.root, "logos", "user1", "logo.png"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	outcome, err := store.Delete(ctx, ref)
	assert.NoError(t, err)
	assert.Equal(t, domain.Deleted, outcome)
}

func TestLocalStoreDeleteMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	outcome, err := store.Delete(context.Background(), "local://logos/user1/gone.png")
	assert.NoError(t, err)
	assert.Equal(t, domain.DeleteNotFound, outcome)
}

func TestLocalStoreDeleteForeignRef(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	// References minted by another backend are treated as already gone
	outcome, err := store.Delete(context.Background(), "https://storage.googleapis.com/bucket/key")
	assert.NoError(t, err)
	assert.Equal(t, domain.DeleteNotFound, outcome)
}
