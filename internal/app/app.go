// Package app implements the application layer for onto.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
	"go.trai.ch/onto/internal/engine/catalog"
	"go.trai.ch/onto/internal/engine/importer"
	"go.trai.ch/onto/internal/ui/overview"
)

// App represents the main application logic.
type App struct {
	repo      ports.Repository
	pipeline  *importer.Pipeline
	bulk      *importer.BulkImporter
	catalog   *catalog.Catalog
	cache     ports.GraphCache
	index     ports.SourceIndex
	parser    ports.Parser
	renderer  ports.Renderer
	directory ports.VocabularyDirectory
	metrics   ports.Metrics
	logger    ports.Logger
}

// New creates a new App instance. metrics may be nil.
func New(
	repo ports.Repository,
	pipeline *importer.Pipeline,
	bulk *importer.BulkImporter,
	cat *catalog.Catalog,
	cache ports.GraphCache,
	index ports.SourceIndex,
	parser ports.Parser,
	renderer ports.Renderer,
	directory ports.VocabularyDirectory,
	metrics ports.Metrics,
	log ports.Logger,
) *App {
	return &App{
		repo:      repo,
		pipeline:  pipeline,
		bulk:      bulk,
		catalog:   cat,
		cache:     cache,
		index:     index,
		parser:    parser,
		renderer:  renderer,
		directory: directory,
		metrics:   metrics,
		logger:    log,
	}
}

// InitOptions configuration for the Init method.
type InitOptions struct {
	// Reset deletes and recreates the home tree. The caller confirms it.
	Reset bool
	// Library points the config at a new library root.
	Library string
}

// Init bootstraps the repository.
func (a *App) Init(ctx context.Context, opts InitOptions) (*domain.Library, error) {
	if opts.Reset {
		if _, err := a.repo.Ensure(ctx, true); err != nil {
			return nil, err
		}
	}
	if opts.Library != "" {
		return a.repo.SetLibraryRoot(ctx, opts.Library)
	}
	return a.repo.Ensure(ctx, false)
}

// ImportOptions configuration for the Import method.
type ImportOptions struct {
	// Workers overrides the configured pool size when positive.
	Workers int
	// Output selects the progress renderer: auto, tui or linear.
	Output string
}

// modeSelector is implemented by renderers that support --output.
type modeSelector interface {
	SetMode(flag string)
}

// Import imports every locator. Directory locators expand to the non-hidden
// regular files they contain. One locator runs on the pipeline directly, more
// than one through the bulk importer. Individual failures are logged; if any
// job failed the returned error is domain.ErrBulkImportFailed, or the job's own
// error for a single import.
func (a *App) Import(ctx context.Context, locators []string, opts ImportOptions) (domain.BulkResult, error) {
	lib, err := a.repo.Ensure(ctx, false)
	if err != nil {
		return domain.BulkResult{}, err
	}

	expanded, err := expand(locators)
	if err != nil {
		return domain.BulkResult{}, err
	}
	if len(expanded) == 0 {
		return domain.BulkResult{}, domain.Fail(domain.ErrLibraryEmpty, nil, "nothing to import",
			"locators", strings.Join(locators, " "))
	}

	return a.importAll(ctx, lib, expanded, opts)
}

// Bootstrap imports the configured sample library.
func (a *App) Bootstrap(ctx context.Context, opts ImportOptions) (domain.BulkResult, error) {
	lib, err := a.repo.Ensure(ctx, false)
	if err != nil {
		return domain.BulkResult{}, err
	}
	return a.importAll(ctx, lib, lib.Config.BootstrapSources(), opts)
}

func (a *App) importAll(
	ctx context.Context,
	lib *domain.Library,
	locators []string,
	opts ImportOptions,
) (domain.BulkResult, error) {
	if sel, ok := a.renderer.(modeSelector); ok {
		sel.SetMode(opts.Output)
	}
	if err := a.renderer.Start(ctx); err != nil {
		return domain.BulkResult{}, err
	}

	var result domain.BulkResult
	if len(locators) == 1 {
		a.renderer.OnPlanEmit(locators)
		job, _ := a.pipeline.Import(ctx, lib, locators[0])
		result.Jobs = []domain.ImportJob{job}
		if job.Succeeded() {
			result.Succeeded = 1
		} else {
			result.Failed = 1
		}
	} else {
		bulkOpts := importer.BulkOptionsFrom(lib.Config)
		if opts.Workers > 0 {
			bulkOpts.Workers = opts.Workers
		}
		result = a.bulk.Run(ctx, lib, locators, bulkOpts)
	}

	_ = a.renderer.Stop()
	a.flushMetrics(lib)

	if result.Failed == 0 {
		for i := range result.Jobs {
			job := &result.Jobs[i]
			a.logger.Info(fmt.Sprintf("imported %s (%d triples)", job.Name, job.Triples))
		}
		return result, nil
	}

	if len(result.Jobs) == 1 {
		return result, result.Jobs[0].Err
	}
	for _, job := range result.Failures() {
		a.logger.Error(job.Err)
	}
	return result, domain.Fail(domain.ErrBulkImportFailed, nil, "import finished with failures",
		"failed", result.Failed, "succeeded", result.Succeeded)
}

func (a *App) flushMetrics(lib *domain.Library) {
	if a.metrics == nil || lib.Config == nil {
		return
	}
	if err := a.metrics.Flush(lib.Config.Metrics.Textfile); err != nil {
		a.logger.Warn(err.Error())
	}
}

// List returns the library entries annotated with cache and provenance state.
func (a *App) List(ctx context.Context) ([]domain.Entry, error) {
	lib, err := a.repo.Ensure(ctx, false)
	if err != nil {
		return nil, err
	}
	return a.catalog.Entries(lib)
}

// Select lets the user pick a library entry by number.
func (a *App) Select(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	lib, err := a.repo.Ensure(ctx, false)
	if err != nil {
		return "", err
	}
	names, err := catalog.List(lib)
	if err != nil {
		return "", err
	}
	return catalog.Select(in, out, names)
}

// Load returns the graph of a library entry. A cache miss, including a
// corrupt entry, falls back to parsing the document and writing it through.
func (a *App) Load(ctx context.Context, name string) (*domain.Graph, error) {
	lib, err := a.repo.Ensure(ctx, false)
	if err != nil {
		return nil, err
	}
	path, err := documentPath(lib, name)
	if err != nil {
		return nil, err
	}

	if g, ok := a.cache.Get(name); ok {
		a.logger.Debug("loaded " + name + " from cache")
		return g, nil
	}

	g, err := a.parser.Parse(ctx, path, name)
	if err != nil {
		return nil, err
	}
	if p, err := a.index.Lookup(name); err == nil && p != nil {
		g.Source = p.Locator
	} else {
		g.Source = path
	}

	if err := a.cache.Put(name, g); err != nil {
		a.logger.Warn(fmt.Sprintf("%s loaded but not cached: %v", name, err))
	}
	return g, nil
}

// Show prints the overview of a library entry to w. A name that is not in
// the library but is a URL or an existing file is parsed without importing.
func (a *App) Show(ctx context.Context, name string, w io.Writer) error {
	g, err := a.Load(ctx, name)
	if errors.Is(err, domain.ErrEntryNotFound) && previewable(name) {
		g, err = a.Preview(ctx, name)
	}
	if err != nil {
		return err
	}
	return overview.Render(w, name, g)
}

// Preview parses locator without adding it to the library.
func (a *App) Preview(ctx context.Context, locator string) (*domain.Graph, error) {
	lib, err := a.repo.Ensure(ctx, false)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("previewing " + locator)
	return a.pipeline.Preview(ctx, lib, locator)
}

// WebOptions configuration for the Web method.
type WebOptions struct {
	// Directory overrides the configured vocabulary list URL.
	Directory string
	Import    ImportOptions
}

// Web lists the vocabularies of an online directory, lets the user pick one
// by number and imports it.
func (a *App) Web(ctx context.Context, in io.Reader, out io.Writer, opts WebOptions) (domain.BulkResult, error) {
	lib, err := a.repo.Ensure(ctx, false)
	if err != nil {
		return domain.BulkResult{}, err
	}

	url := opts.Directory
	if url == "" && lib.Config != nil {
		url = lib.Config.VocabularyDirectory()
	}
	if url == "" {
		url = domain.DefaultVocabularyDirectory
	}

	a.logger.Info("reading " + url)
	vocabularies, err := a.directory.List(ctx, url)
	if err != nil {
		return domain.BulkResult{}, err
	}
	if len(vocabularies) == 0 {
		return domain.BulkResult{}, domain.Fail(domain.ErrVocabularyListInvalid, nil, "directory lists no vocabularies",
			"url", url)
	}

	labels := make([]string, len(vocabularies))
	for i, v := range vocabularies {
		labels[i] = v.Label()
	}
	_, _ = fmt.Fprintf(out, "%d vocabularies found.\n", len(vocabularies))

	i, err := catalog.SelectIndex(in, out, labels)
	if err != nil {
		return domain.BulkResult{}, err
	}
	return a.importAll(ctx, lib, []string{vocabularies[i].URI}, opts.Import)
}

// Remove deletes a library document with its cache entry and provenance record.
func (a *App) Remove(ctx context.Context, name string) error {
	lib, err := a.repo.Ensure(ctx, false)
	if err != nil {
		return err
	}
	path, err := documentPath(lib, name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return domain.Fail(domain.ErrLibraryWriteFailed, err, "remove document", "path", path)
	}
	if _, err := a.cache.Delete(name); err != nil {
		a.logger.Warn(err.Error())
	}
	if err := a.index.Delete(name); err != nil {
		a.logger.Warn(err.Error())
	}
	a.logger.Info("removed " + name)
	return nil
}

// Move renames a library document with its cache entry and provenance record.
// The target name must not exist.
func (a *App) Move(ctx context.Context, oldName, newName string) error {
	lib, err := a.repo.Ensure(ctx, false)
	if err != nil {
		return err
	}
	src, err := documentPath(lib, oldName)
	if err != nil {
		return err
	}
	if !validName(newName) {
		return domain.Fail(domain.ErrInvalidLocator, nil, "invalid entry name", "name", newName)
	}
	dst := lib.DocumentPath(newName)
	if _, err := os.Lstat(dst); err == nil {
		return domain.Fail(domain.ErrNameCollision, nil, "target entry exists", "name", newName)
	}

	if err := os.Rename(src, dst); err != nil {
		return domain.Fail(domain.ErrLibraryWriteFailed, err, "rename document", "from", src, "to", dst)
	}
	if _, err := a.cache.Rename(oldName, newName); err != nil {
		a.logger.Warn(err.Error())
	}
	if err := a.index.Rename(oldName, newName); err != nil {
		a.logger.Warn(err.Error())
	}
	a.logger.Info(fmt.Sprintf("moved %s to %s", oldName, newName))
	return nil
}

// CacheRemove deletes the cache entry for name. It reports false when there
// was none.
func (a *App) CacheRemove(ctx context.Context, name string) (bool, error) {
	if _, err := a.repo.Ensure(ctx, false); err != nil {
		return false, err
	}
	return a.cache.Delete(name)
}

// CacheMove renames the cache entry for oldName. It reports false when there
// was none.
func (a *App) CacheMove(ctx context.Context, oldName, newName string) (bool, error) {
	if _, err := a.repo.Ensure(ctx, false); err != nil {
		return false, err
	}
	if !validName(newName) {
		return false, domain.Fail(domain.ErrInvalidLocator, nil, "invalid entry name", "name", newName)
	}
	return a.cache.Rename(oldName, newName)
}

func documentPath(lib *domain.Library, name string) (string, error) {
	if !validName(name) {
		return "", domain.Fail(domain.ErrEntryNotFound, nil, "invalid entry name", "name", name)
	}
	path := lib.DocumentPath(name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", domain.Fail(domain.ErrEntryNotFound, err, "no such library entry", "name", name, "root", lib.Root)
	}
	return path, nil
}

// previewable reports whether name can be parsed from outside the library.
func previewable(name string) bool {
	src, err := domain.ParseSource(name)
	if err != nil {
		return false
	}
	if src.IsNetwork() {
		return true
	}
	info, err := os.Stat(src.Locator)
	return err == nil && info.Mode().IsRegular()
}

// validName accepts plain, non-hidden filenames.
func validName(name string) bool {
	return name != "" && filepath.Base(name) == name && !strings.HasPrefix(name, ".")
}

// expand replaces directory locators with the non-hidden regular files they
// contain, in name order. URLs and plain files pass through unchanged.
func expand(locators []string) ([]string, error) {
	out := make([]string, 0, len(locators))
	for _, loc := range locators {
		src, err := domain.ParseSource(loc)
		if err != nil {
			return nil, err
		}
		if src.IsNetwork() {
			out = append(out, loc)
			continue
		}

		info, err := os.Stat(src.Locator)
		if err != nil || !info.IsDir() {
			out = append(out, loc)
			continue
		}

		entries, err := os.ReadDir(src.Locator)
		if err != nil {
			return nil, domain.Fail(domain.ErrSourceUnreachable, err, "read directory", "dir", src.Locator)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".") || !e.Type().IsRegular() {
				continue
			}
			out = append(out, filepath.Join(src.Locator, e.Name()))
		}
	}
	return out, nil
}

// IsFatal reports whether err must abort the process with remediation
// instructions.
func IsFatal(err error) bool {
	return errors.Is(err, domain.ErrDirectoryMissing)
}
