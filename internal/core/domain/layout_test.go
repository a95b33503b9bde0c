package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/core/domain"
)

func TestNewLayout(t *testing.T) {
	t.Parallel()

	home := filepath.Join("/", "home", "me", ".onto")
	l := domain.NewLayout(home)

	assert.Equal(t, filepath.Join(home, "config.yaml"), l.ConfigPath)
	assert.Equal(t, filepath.Join(home, "models"), l.DefaultLibrary)
	assert.Equal(t, filepath.Join(home, ".cache", domain.CacheFormatVersion), l.CacheDir)
	assert.Equal(t, filepath.Join(home, "viz"), l.VizDir)
	assert.Equal(t, filepath.Join(home, ".cache", domain.CacheFormatVersion, "foaf.rdf.pickle"), l.CachePath("foaf.rdf"))
	assert.ElementsMatch(t, []string{home, l.CacheDir, l.VizDir, l.DefaultLibrary}, l.RequiredDirs())
}

func TestDefaultHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(domain.HomeEnvVar, dir)

	home, err := domain.DefaultHome()
	require.NoError(t, err)
	assert.Equal(t, dir, home)
}

func TestLibraryConfig_BootstrapSources(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultLibraryConfig("/lib")
	assert.Equal(t, "/lib", cfg.Models.Dir)
	assert.Equal(t, domain.DefaultWorkers, cfg.Import.Workers)
	assert.Equal(t, domain.DefaultBootstrapSources, cfg.BootstrapSources())

	cfg.Bootstrap = []string{"http://example.org/a"}
	assert.Equal(t, []string{"http://example.org/a"}, cfg.BootstrapSources())

	lib := &domain.Library{Root: "/lib", Config: cfg}
	assert.Equal(t, filepath.Join("/lib", "a.ttl"), lib.DocumentPath("a.ttl"))
}

func TestLibraryConfig_VocabularyDirectory(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultLibraryConfig("/lib")
	assert.Equal(t, domain.DefaultVocabularyDirectory, cfg.VocabularyDirectory())

	cfg.Web.Directory = "http://localhost:8080/list"
	assert.Equal(t, "http://localhost:8080/list", cfg.VocabularyDirectory())
}
