package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/adapters/config"
	"go.trai.ch/onto/internal/adapters/fs"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func newBootstrapper(t *testing.T) (*fs.Bootstrapper, *domain.Layout) {
	t.Helper()
	layout := domain.NewLayout(filepath.Join(t.TempDir(), ".onto"))
	return fs.NewBootstrapper(layout, config.NewFileStore(), quietLogger(t)), layout
}

func TestBootstrapper_Fresh(t *testing.T) {
	t.Parallel()
	b, layout := newBootstrapper(t)

	lib, err := b.Ensure(context.Background(), false)
	require.NoError(t, err)

	for _, dir := range layout.RequiredDirs() {
		assert.DirExists(t, dir)
	}
	assert.Equal(t, layout.DefaultLibrary, lib.Root)

	cfg, err := config.NewFileStore().Load(layout.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultLibrary, cfg.Models.Dir)
}

func TestBootstrapper_Idempotent(t *testing.T) {
	t.Parallel()
	b, layout := newBootstrapper(t)
	ctx := context.Background()

	custom := filepath.Join(t.TempDir(), "my-models")
	_, err := b.SetLibraryRoot(ctx, custom)
	require.NoError(t, err)

	doc := filepath.Join(custom, "foaf.rdf")
	require.NoError(t, os.WriteFile(doc, []byte("<rdf/>"), 0o600))

	first, err := b.Ensure(ctx, false)
	require.NoError(t, err)
	second, err := b.Ensure(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, custom, first.Root)
	assert.Equal(t, first.Root, second.Root)
	assert.FileExists(t, doc)
	for _, dir := range layout.RequiredDirs() {
		assert.DirExists(t, dir)
	}
}

func TestBootstrapper_RepairsMissingDirs(t *testing.T) {
	t.Parallel()
	b, layout := newBootstrapper(t)
	ctx := context.Background()

	_, err := b.Ensure(ctx, false)
	require.NoError(t, err)
	marker := filepath.Join(layout.DefaultLibrary, "keep.ttl")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o600))
	require.NoError(t, os.RemoveAll(layout.VizDir))
	require.NoError(t, os.RemoveAll(filepath.Dir(layout.CacheDir)))

	_, err = b.Ensure(ctx, false)
	require.NoError(t, err)
	assert.DirExists(t, layout.VizDir)
	assert.DirExists(t, layout.CacheDir)
	assert.FileExists(t, marker, "repair must not wipe the library")
}

func TestBootstrapper_Reset(t *testing.T) {
	t.Parallel()
	b, layout := newBootstrapper(t)
	ctx := context.Background()

	_, err := b.Ensure(ctx, false)
	require.NoError(t, err)
	doc := filepath.Join(layout.DefaultLibrary, "old.rdf")
	require.NoError(t, os.WriteFile(doc, []byte("x"), 0o600))

	lib, err := b.Ensure(ctx, true)
	require.NoError(t, err)
	assert.NoFileExists(t, doc)
	assert.Equal(t, layout.DefaultLibrary, lib.Root)
	assert.DirExists(t, layout.CacheDir)
}

func TestBootstrapper_MissingRootIsFatal(t *testing.T) {
	t.Parallel()
	b, _ := newBootstrapper(t)
	ctx := context.Background()

	custom := filepath.Join(t.TempDir(), "gone")
	_, err := b.SetLibraryRoot(ctx, custom)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(custom))

	_, err = b.Ensure(ctx, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryMissing))
	assert.NoDirExists(t, custom, "a vanished root must not be recreated")

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, fs.RemedyCommand, zErr.Metadata()["remedy"])
}

func TestBootstrapper_FillsMissingModelsDir(t *testing.T) {
	t.Parallel()
	b, layout := newBootstrapper(t)

	require.NoError(t, os.MkdirAll(layout.Home, 0o750))
	require.NoError(t, os.WriteFile(layout.ConfigPath, []byte("import:\n  workers: 3\n"), 0o600))

	lib, err := b.Ensure(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultLibrary, lib.Root)

	cfg, err := config.NewFileStore().Load(layout.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultLibrary, cfg.Models.Dir)
	assert.Equal(t, 3, cfg.Import.Workers, "other keys must survive the write-back")
}

func TestHasher_HashFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("same"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("same"), 0o600))

	h := fs.NewHasher()
	ha, err := h.HashFile(a)
	require.NoError(t, err)
	hb, err := h.HashFile(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
	assert.Len(t, ha, 16)

	_, err = h.HashFile(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
