package local_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricelist/internal/domain"
	"pricelist/internal/port"
	"pricelist/internal/storage/local"
)

func newStorage(t *testing.T) (port.ObjectStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	store, err := local.NewLocalStorage(dir)
	require.NoError(t, err)
	return store, dir
}

func TestLocalStorage_UploadAndDownload(t *testing.T) {
	store, dir := newStorage(t)
	ctx := context.Background()

	out, err := store.Upload(ctx, port.UploadInput{Key: "data.json", Body: strings.NewReader(`[]`)})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.json"), out.Location)

	data, err := store.Download(ctx, "data.json")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestLocalStorage_UploadOverwritesWholesale(t *testing.T) {
	store, dir := newStorage(t)
	ctx := context.Background()

	_, err := store.Upload(ctx, port.UploadInput{Key: "data.json", Body: strings.NewReader(`[{"code":"A"},{"code":"B"}]`)})
	require.NoError(t, err)
	_, err = store.Upload(ctx, port.UploadInput{Key: "data.json", Body: strings.NewReader(`[]`)})
	require.NoError(t, err)

	data, err := store.Download(ctx, "data.json")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "data.json", entries[0].Name())
}

func TestLocalStorage_NestedKeys(t *testing.T) {
	store, dir := newStorage(t)
	ctx := context.Background()

	_, err := store.Upload(ctx, port.UploadInput{Key: "uploads/abc/list.docx", Body: strings.NewReader("x")})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "uploads", "abc", "list.docx"))

	require.NoError(t, store.Delete(ctx, "uploads/abc/list.docx"))
	assert.NoFileExists(t, filepath.Join(dir, "uploads", "abc", "list.docx"))
	assert.NoError(t, store.Delete(ctx, "uploads/abc/list.docx"), "deleting a missing key is not an error")
}

func TestLocalStorage_DownloadMissing(t *testing.T) {
	store, _ := newStorage(t)

	_, err := store.Download(context.Background(), "data.json")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	store, _ := newStorage(t)
	ctx := context.Background()

	for _, key := range []string{"", "../data.json", "uploads/../../x", "/etc/passwd", `a\b`} {
		_, err := store.Upload(ctx, port.UploadInput{Key: key, Body: strings.NewReader("x")})
		assert.ErrorIs(t, err, local.ErrInvalidKey, "key %q", key)
	}
}

func TestLocalStorage_UploadCanceled(t *testing.T) {
	store, _ := newStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Upload(ctx, port.UploadInput{Key: "data.json", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalStorage_Ping(t *testing.T) {
	store, dir := newStorage(t)
	assert.NoError(t, store.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, store.Ping(context.Background()))
}
