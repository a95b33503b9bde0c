package catalog_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports/mocks"
	"go.trai.ch/onto/internal/engine/catalog"
	"go.uber.org/mock/gomock"
)

func library(t *testing.T, files ...string) *domain.Library {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x"), 0o600))
	}
	return &domain.Library{Layout: domain.NewLayout(t.TempDir()), Root: root}
}

func TestList(t *testing.T) {
	t.Parallel()
	lib := library(t, "foaf.rdf", "wine.owl", ".hidden", "stale.rdf.pickle", ".partial-123-x.rdf")
	require.NoError(t, os.Mkdir(filepath.Join(lib.Root, "subdir"), 0o750))

	names, err := catalog.List(lib)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"foaf.rdf", "wine.owl"}, names)
}

func TestList_MissingRoot(t *testing.T) {
	t.Parallel()
	lib := &domain.Library{Root: filepath.Join(t.TempDir(), "gone")}

	_, err := catalog.List(lib)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryMissing))
}

func TestCatalog_Entries(t *testing.T) {
	t.Parallel()
	lib := library(t, "foaf.rdf", "local.ttl")

	ctrl := gomock.NewController(t)
	cache := mocks.NewMockGraphCache(ctrl)
	cache.EXPECT().Has("foaf.rdf").Return(true)
	cache.EXPECT().Has("local.ttl").Return(false)
	idx := mocks.NewMockSourceIndex(ctrl)
	idx.EXPECT().Lookup("foaf.rdf").Return(&domain.Provenance{Locator: "http://xmlns.com/foaf/spec/"}, nil)
	idx.EXPECT().Lookup("local.ttl").Return(nil, nil)

	entries, err := catalog.New(cache, idx).Entries(lib)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]domain.Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	assert.True(t, byName["foaf.rdf"].Cached)
	assert.Equal(t, "http://xmlns.com/foaf/spec/", byName["foaf.rdf"].Locator)
	assert.EqualValues(t, 1, byName["foaf.rdf"].Size)
	assert.False(t, byName["local.ttl"].Cached)
	assert.Empty(t, byName["local.ttl"].Locator)
}

func TestSelect(t *testing.T) {
	t.Parallel()
	names := []string{"foaf.rdf", "wine.owl", "cito.rdf"}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
		retries int
	}{
		{name: "first", input: "1\n", want: "foaf.rdf"},
		{name: "last with spaces", input: "  3 \n", want: "cito.rdf"},
		{name: "retries until valid", input: "0\nfoo\n4\n-1\n2\n", want: "wine.owl", retries: 4},
		{name: "quit", input: "q\n", wantErr: domain.ErrSelectionCancelled},
		{name: "quit upper", input: "abc\nQ\n", wantErr: domain.ErrSelectionCancelled, retries: 1},
		{name: "eof", input: "", wantErr: domain.ErrSelectionCancelled},
		{name: "eof after garbage", input: "9", wantErr: domain.ErrSelectionCancelled, retries: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer

			got, err := catalog.Select(strings.NewReader(tt.input), &out, names)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.Contains(t, out.String(), "[1] foaf.rdf\n[2] wine.owl\n[3] cito.rdf\n")
			assert.Equal(t, tt.retries, strings.Count(out.String(), "Please enter a valid number."))
		})
	}
}

func TestSelect_Empty(t *testing.T) {
	t.Parallel()

	_, err := catalog.Select(strings.NewReader("1\n"), &bytes.Buffer{}, nil)
	assert.True(t, errors.Is(err, domain.ErrLibraryEmpty))
}

func TestSelectIndex_DuplicateLabels(t *testing.T) {
	t.Parallel()
	labels := []string{"http://example.org/a ==> A", "http://example.org/a ==> A"}

	i, err := catalog.SelectIndex(strings.NewReader("2\n"), &bytes.Buffer{}, labels)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}
