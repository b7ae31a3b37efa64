//go:build unit
// +build unit

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dannykhan02/Ticketing-system/internal/domain/media"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLocalStorage(t *testing.T) media.Storage {
	t.Helper()

	storage, err := NewLocalMediaStorage(t.TempDir(), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return storage
}

func TestLocalMediaStorage_SaveAndFetch(t *testing.T) {
	storage := setupLocalStorage(t)

	content := []byte("fake png bytes")
	path, err := storage.Save(context.Background(), "qr/ticket-1.png", "image/png", content)
	require.NoError(t, err)
	assert.FileExists(t, path)

	fetched, err := storage.Fetch(context.Background(), "qr/ticket-1.png")
	require.NoError(t, err)
	assert.Equal(t, content, fetched)
}

func TestLocalMediaStorage_Delete(t *testing.T) {
	storage := setupLocalStorage(t)

	path, err := storage.Save(context.Background(), "qr/ticket-2.png", "image/png", []byte("data"))
	require.NoError(t, err)

	require.NoError(t, storage.Delete(context.Background(), "qr/ticket-2.png"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalMediaStorage_Fetch_NotFound(t *testing.T) {
	storage := setupLocalStorage(t)

	_, err := storage.Fetch(context.Background(), "missing.png")
	assert.Error(t, err)
}

func TestLocalMediaStorage_RejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalMediaStorage(filepath.Join(dir, "media"), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = storage.Save(context.Background(), "../escape.png", "image/png", []byte("data"))
	assert.Error(t, err)

	_, err = storage.Fetch(context.Background(), "/etc/passwd")
	assert.Error(t, err)
}

func TestNewLocalMediaStorage_EmptyDirectory(t *testing.T) {
	_, err := NewLocalMediaStorage("", testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
