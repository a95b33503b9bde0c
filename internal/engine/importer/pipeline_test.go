package importer_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/adapters/cas"
	"go.trai.ch/onto/internal/adapters/fetch"
	"go.trai.ch/onto/internal/adapters/fs"
	"go.trai.ch/onto/internal/adapters/index"
	"go.trai.ch/onto/internal/adapters/telemetry"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports/mocks"
	"go.trai.ch/onto/internal/engine/importer"
	"go.uber.org/mock/gomock"
)

const document = `<http://ex.org/A> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Class> .`

type harness struct {
	lib      *domain.Library
	cache    *cas.Store
	fetcher  *mocks.MockFetcher
	parser   *mocks.MockParser
	index    *mocks.MockSourceIndex
	logger   *mocks.MockLogger
	pipeline *importer.Pipeline
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	layout := domain.NewLayout(t.TempDir())
	for _, dir := range layout.RequiredDirs() {
		require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	}
	lib := &domain.Library{
		Layout: layout,
		Root:   layout.DefaultLibrary,
		Config: domain.DefaultLibraryConfig(layout.DefaultLibrary),
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	cache, err := cas.NewStore(layout.CacheDir, 4, log)
	require.NoError(t, err)

	hasher := mocks.NewMockHasher(ctrl)
	hasher.EXPECT().HashFile(gomock.Any()).Return("0123456789abcdef", nil).AnyTimes()

	h := &harness{
		lib:     lib,
		cache:   cache,
		fetcher: mocks.NewMockFetcher(ctrl),
		parser:  mocks.NewMockParser(ctrl),
		index:   mocks.NewMockSourceIndex(ctrl),
		logger:  log,
	}
	h.pipeline = importer.NewPipeline(h.fetcher, h.parser, cache, h.index, hasher,
		telemetry.NewNoOpTracer(), log, nil)
	return h
}

// serve makes every fetch succeed with a small N-Triples document.
func (h *harness) serve() {
	h.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, src domain.Source, dst io.Writer) (string, error) {
			_, err := io.WriteString(dst, document)
			return src.Locator, err
		}).AnyTimes()
}

// parseAll makes every parse succeed.
func (h *harness) parseAll() {
	h.parser.EXPECT().Parse(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path, _ string) (*domain.Graph, error) {
			return domain.BuildGraph(path, []domain.Triple{{
				Subject:   domain.Term{Kind: domain.TermIRI, Value: "http://ex.org/A"},
				Predicate: domain.Term{Kind: domain.TermIRI, Value: domain.RDFType},
				Object:    domain.Term{Kind: domain.TermIRI, Value: domain.OWLClass},
			}}), nil
		}).AnyTimes()
}

// freshIndex reports no previous owner and accepts every record.
func (h *harness) freshIndex() {
	h.index.EXPECT().Lookup(gomock.Any()).Return(nil, nil).AnyTimes()
	h.index.EXPECT().Record(gomock.Any()).Return(nil).AnyTimes()
}

func libraryFiles(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestImportOne_Network(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.serve()
	h.parseAll()
	h.index.EXPECT().Lookup("example.org_onto.rdf").Return(nil, nil)
	h.index.EXPECT().Record(gomock.Any()).DoAndReturn(func(p *domain.Provenance) error {
		assert.Equal(t, "example.org_onto.rdf", p.Name)
		assert.Equal(t, "http://example.org/onto", p.Locator)
		assert.Equal(t, "0123456789abcdef", p.Digest)
		assert.False(t, p.ImportedAt.IsZero())
		return nil
	})

	g, err := h.pipeline.ImportOne(context.Background(), h.lib, "http://example.org/onto")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "http://example.org/onto", g.Source)

	assert.Equal(t, []string{"example.org_onto.rdf"}, libraryFiles(t, h.lib.Root))
	assert.FileExists(t, filepath.Join(h.lib.Layout.CacheDir, "example.org_onto.rdf.pickle"))

	cached, ok := h.cache.Get("example.org_onto.rdf")
	require.True(t, ok)
	assert.True(t, g.Equal(cached))
}

func TestImport_JobRecord(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.serve()
	h.parseAll()
	h.freshIndex()

	job, g := h.pipeline.Import(context.Background(), h.lib, "www.w3.org/2002/07/owl")
	require.NoError(t, job.Err)
	require.NotNil(t, g)

	assert.Equal(t, "www.w3.org_2002_07_owl.rdf", job.Name)
	assert.Equal(t, "http://www.w3.org/2002/07/owl", job.FinalLocation)
	assert.Equal(t, h.lib.DocumentPath(job.Name), job.Path)
	assert.Equal(t, 1, job.Triples)
	assert.True(t, job.Cached)
	assert.Equal(t, domain.JobCompleted, domain.StatusOf(&job))

	info, err := os.Stat(job.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())
}

func TestImportOne_ParseFailureLeavesNothing(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.serve()
	h.parser.EXPECT().Parse(gomock.Any(), gomock.Any(), "example.org_onto.rdf").
		DoAndReturn(func(_ context.Context, path, _ string) (*domain.Graph, error) {
			assert.FileExists(t, path, "parser reads the staged document")
			return nil, errors.New("unexpected token")
		})

	g, err := h.pipeline.ImportOne(context.Background(), h.lib, "http://example.org/onto")
	require.Error(t, err)
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, domain.ErrInvalidContent))

	assert.Empty(t, libraryFiles(t, h.lib.Root))
	assert.False(t, h.cache.Has("example.org_onto.rdf"))
}

func TestImportOne_FetchFailureLeavesNothing(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, src domain.Source, dst io.Writer) (string, error) {
			_, _ = io.WriteString(dst, "<rdf:RDF")
			return "", domain.Fail(domain.ErrSourceUnreachable, errors.New("connection reset"), "get", "locator", src.Locator)
		})

	_, err := h.pipeline.ImportOne(context.Background(), h.lib, "http://example.org/onto")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceUnreachable))
	assert.Empty(t, libraryFiles(t, h.lib.Root))
}

func TestImportOne_UntaggedFetchError(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("boom"))

	_, err := h.pipeline.ImportOne(context.Background(), h.lib, "/does/not/matter.ttl")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceUnreachable))
}

func TestImportOne_NameCollision(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.serve()
	h.parseAll()
	h.index.EXPECT().Lookup("example.org_onto.rdf").
		Return(&domain.Provenance{Name: "example.org_onto.rdf", Locator: "https://example.org/onto"}, nil)

	existing := filepath.Join(h.lib.Root, "example.org_onto.rdf")
	require.NoError(t, os.WriteFile(existing, []byte("original"), domain.FilePerm))

	_, err := h.pipeline.ImportOne(context.Background(), h.lib, "http://example.org/onto")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNameCollision))
	assert.Equal(t, []string{"example.org_onto.rdf"}, libraryFiles(t, h.lib.Root))
	assert.False(t, h.cache.Has("example.org_onto.rdf"))

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestImportOne_StaleRecordIsReplaced(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.serve()
	h.parseAll()
	h.index.EXPECT().Lookup("example.org_onto.rdf").
		Return(&domain.Provenance{Name: "example.org_onto.rdf", Locator: "https://example.org/onto"}, nil)
	h.index.EXPECT().Record(gomock.Any()).DoAndReturn(func(p *domain.Provenance) error {
		assert.Equal(t, "http://example.org/onto", p.Locator)
		return nil
	})

	_, err := h.pipeline.ImportOne(context.Background(), h.lib, "http://example.org/onto")
	require.NoError(t, err)
	assert.Equal(t, []string{"example.org_onto.rdf"}, libraryFiles(t, h.lib.Root))
	assert.True(t, h.cache.Has("example.org_onto.rdf"))
}

func TestImportOne_LocalFileByRelativeThenAbsolutePath(t *testing.T) {
	h := newHarness(t)
	h.parseAll()
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	idx := index.NewInMemory(h.logger)
	t.Cleanup(func() { _ = idx.Close() })
	pipeline := importer.NewPipeline(fetch.New(nil, h.logger), h.parser, h.cache, idx, fs.NewHasher(),
		telemetry.NewNoOpTracer(), h.logger, nil)

	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "zoo.nt"), []byte(document), domain.FilePerm))
	t.Chdir(srcDir)

	_, err := pipeline.ImportOne(context.Background(), h.lib, "zoo.nt")
	require.NoError(t, err)

	_, err = pipeline.ImportOne(context.Background(), h.lib, filepath.Join(srcDir, "zoo.nt"))
	require.NoError(t, err)

	p, err := idx.Lookup("zoo.nt")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, filepath.IsAbs(p.Locator))
	assert.Equal(t, filepath.Join(srcDir, "zoo.nt"), p.Locator)
}

func TestImportOne_ReimportSameSource(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.serve()
	h.parseAll()
	h.index.EXPECT().Lookup("example.org_onto.rdf").
		Return(&domain.Provenance{Name: "example.org_onto.rdf", Locator: "http://example.org/onto"}, nil)
	h.index.EXPECT().Record(gomock.Any()).Return(nil)

	_, err := h.pipeline.ImportOne(context.Background(), h.lib, "http://example.org/onto")
	require.NoError(t, err)
}

func TestImport_CacheFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.serve()
	h.parseAll()
	h.freshIndex()
	h.logger.EXPECT().Warn(gomock.Any()).Times(1)

	ctrl := gomock.NewController(t)
	cache := mocks.NewMockGraphCache(ctrl)
	cache.EXPECT().Put("pizza.owl", gomock.Any()).
		Return(domain.Fail(domain.ErrCacheWrite, errors.New("disk full"), "write entry"))
	hasher := mocks.NewMockHasher(ctrl)
	hasher.EXPECT().HashFile(gomock.Any()).Return("ffff", nil)

	p := importer.NewPipeline(h.fetcher, h.parser, cache, h.index, hasher,
		telemetry.NewNoOpTracer(), h.logger, nil)

	job, g := p.Import(context.Background(), h.lib, "/data/pizza.owl")
	require.NoError(t, job.Err)
	require.NotNil(t, g)
	assert.False(t, job.Cached)
	assert.True(t, errors.Is(job.CacheErr, domain.ErrCacheWrite))
	assert.Equal(t, domain.JobUncached, domain.StatusOf(&job))
	assert.Equal(t, []string{"pizza.owl"}, libraryFiles(t, h.lib.Root))
}

func TestImportOne_InvalidLocator(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	_, err := h.pipeline.ImportOne(context.Background(), h.lib, "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidLocator))
}

func TestImportOne_JobDeadline(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.lib.Config.Import.Timeout = 20 * time.Millisecond
	h.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, src domain.Source, _ io.Writer) (string, error) {
			<-ctx.Done()
			return "", domain.Fail(domain.ErrSourceUnreachable, ctx.Err(), "get", "locator", src.Locator)
		})

	_, err := h.pipeline.ImportOne(context.Background(), h.lib, "http://slow.example.org/onto.ttl")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceUnreachable))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Empty(t, libraryFiles(t, h.lib.Root))
}

func TestImport_Metrics(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.serve()
	h.parseAll()
	h.freshIndex()

	ctrl := gomock.NewController(t)
	m := mocks.NewMockMetrics(ctrl)
	m.EXPECT().ObserveImport(domain.JobCompleted, gomock.Any())
	m.EXPECT().ObserveImport(domain.JobFailed, gomock.Any())

	hasher := mocks.NewMockHasher(ctrl)
	hasher.EXPECT().HashFile(gomock.Any()).Return("ffff", nil).AnyTimes()
	p := importer.NewPipeline(h.fetcher, h.parser, h.cache, h.index, hasher,
		telemetry.NewNoOpTracer(), h.logger, m)

	job, _ := p.Import(context.Background(), h.lib, "/data/a.ttl")
	require.NoError(t, job.Err)
	job, _ = p.Import(context.Background(), h.lib, "")
	require.Error(t, job.Err)
}

func TestPreview_NetworkLeavesNoTrace(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.serve()

	var staged string
	h.parser.EXPECT().Parse(gomock.Any(), gomock.Any(), "example.org_onto.rdf").
		DoAndReturn(func(_ context.Context, path, _ string) (*domain.Graph, error) {
			staged = path
			assert.FileExists(t, path)
			return domain.BuildGraph(path, nil), nil
		})

	g, err := h.pipeline.Preview(context.Background(), h.lib, "http://example.org/onto")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/onto", g.Source)

	assert.NoFileExists(t, staged)
	assert.NotEqual(t, h.lib.Root, filepath.Dir(staged))
	assert.Empty(t, libraryFiles(t, h.lib.Root))
	assert.False(t, h.cache.Has("example.org_onto.rdf"))
}

func TestPreview_LocalFileParsedInPlace(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	path := filepath.Join(t.TempDir(), "zoo.nt")
	require.NoError(t, os.WriteFile(path, []byte(document), domain.FilePerm))
	h.parser.EXPECT().Parse(gomock.Any(), path, "zoo.nt").Return(domain.BuildGraph(path, nil), nil)

	g, err := h.pipeline.Preview(context.Background(), h.lib, path)
	require.NoError(t, err)
	assert.Equal(t, path, g.Source)
	assert.Empty(t, libraryFiles(t, h.lib.Root))
}

func TestPreview_Failures(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		_, err := h.pipeline.Preview(context.Background(), h.lib, filepath.Join(t.TempDir(), "nope.ttl"))
		assert.ErrorIs(t, err, domain.ErrSourceUnreachable)
	})

	t.Run("invalid content", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.serve()
		h.parser.EXPECT().Parse(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("bad xml"))

		_, err := h.pipeline.Preview(context.Background(), h.lib, "http://example.org/onto")
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
	})
}
