// Package importer fetches, validates and persists ontology documents, one at
// a time or through a bounded worker pool.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
)

// StagingPrefix marks in-flight downloads in the library root. The catalog
// skips them because they are hidden.
const StagingPrefix = ".partial-"

// Pipeline runs the fetch, parse and commit checkpoints of one import job.
// Every failure removes the staging file, so the library root only ever
// lists documents that parsed.
type Pipeline struct {
	fetcher ports.Fetcher
	parser  ports.Parser
	cache   ports.GraphCache
	index   ports.SourceIndex
	hasher  ports.Hasher
	tracer  ports.Tracer
	logger  ports.Logger
	metrics ports.Metrics
	now     func() time.Time

	// commitMu serializes the filesystem-mutating section of every job:
	// the collision check, the rename into the library and the cache write.
	commitMu sync.Mutex
}

// NewPipeline creates a Pipeline. metrics may be nil.
func NewPipeline(
	fetcher ports.Fetcher,
	parser ports.Parser,
	cache ports.GraphCache,
	index ports.SourceIndex,
	hasher ports.Hasher,
	tracer ports.Tracer,
	logger ports.Logger,
	metrics ports.Metrics,
) *Pipeline {
	return &Pipeline{
		fetcher: fetcher,
		parser:  parser,
		cache:   cache,
		index:   index,
		hasher:  hasher,
		tracer:  tracer,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// ImportOne imports locator into lib and returns the parsed graph.
func (p *Pipeline) ImportOne(ctx context.Context, lib *domain.Library, locator string) (*domain.Graph, error) {
	job, g := p.Import(ctx, lib, locator)
	return g, job.Err
}

// Import runs one job and returns its record. The graph is nil when the job
// failed. A cache write failure is reported in job.CacheErr and does not
// fail the job. The job deadline comes from lib.Config.Import.Timeout.
func (p *Pipeline) Import(ctx context.Context, lib *domain.Library, locator string) (domain.ImportJob, *domain.Graph) {
	job := domain.NewImportJob(locator)
	start := p.now()
	defer func() {
		job.Duration = p.now().Sub(start)
		if p.metrics != nil {
			p.metrics.ObserveImport(domain.StatusOf(&job), job.Duration)
		}
	}()

	src, err := domain.ParseSource(locator)
	if err != nil {
		job.Err = err
		return job, nil
	}
	job.Name = src.CanonicalName()

	if timeout := jobTimeout(lib); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ctx, span := p.tracer.Start(ctx, job.Name, ports.AsJob())
	defer span.End()
	span.SetAttribute("onto.locator", src.Locator)
	span.SetAttribute("onto.name", job.Name)

	g, err := p.run(ctx, lib, src, &job)
	if err != nil {
		job.Err = err
		span.RecordError(err)
		p.logger.Debug(fmt.Sprintf("import %s failed: %v", locator, err))
		return job, nil
	}

	span.SetAttribute("onto.cached", job.Cached)
	job.Triples = g.Len()
	return job, g
}

// Preview fetches and parses locator without writing to the library, the
// cache or the index. Local files are parsed in place. Network documents are
// staged in the system temporary directory and removed afterwards.
func (p *Pipeline) Preview(ctx context.Context, lib *domain.Library, locator string) (*domain.Graph, error) {
	src, err := domain.ParseSource(locator)
	if err != nil {
		return nil, err
	}
	name := src.CanonicalName()

	if timeout := jobTimeout(lib); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ctx, span := p.tracer.Start(ctx, "preview "+name)
	defer span.End()
	span.SetAttribute("onto.locator", src.Locator)

	path := src.Locator
	if src.IsNetwork() {
		staging, err := os.CreateTemp("", StagingPrefix+"*-"+name)
		if err != nil {
			return nil, domain.Fail(domain.ErrLibraryWriteFailed, err, "create preview file")
		}
		path = staging.Name()
		defer func() { _ = os.Remove(path) }()

		if _, err := p.fetch(ctx, src, staging); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(path); err != nil {
		err = domain.Fail(domain.ErrSourceUnreachable, err, "open", "locator", src.Locator)
		span.RecordError(err)
		return nil, err
	}

	g, err := p.parse(ctx, path, name)
	if err != nil {
		return nil, err
	}
	g.Source = src.Locator
	return g, nil
}

func (p *Pipeline) run(ctx context.Context, lib *domain.Library, src domain.Source, job *domain.ImportJob) (*domain.Graph, error) {
	staging, err := os.CreateTemp(lib.Root, StagingPrefix+"*-"+job.Name)
	if err != nil {
		return nil, domain.Fail(domain.ErrLibraryWriteFailed, err, "create staging file", "root", lib.Root)
	}
	stagingPath := staging.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(stagingPath)
		}
	}()

	final, err := p.fetch(ctx, src, staging)
	if err != nil {
		return nil, err
	}
	job.FinalLocation = final

	g, err := p.parse(ctx, stagingPath, job.Name)
	if err != nil {
		return nil, err
	}
	g.Source = src.Locator

	if err := p.commit(ctx, lib, src, job, stagingPath, g); err != nil {
		return nil, err
	}
	committed = true
	return g, nil
}

func (p *Pipeline) fetch(ctx context.Context, src domain.Source, staging *os.File) (string, error) {
	ctx, span := p.tracer.Start(ctx, "fetch")
	defer span.End()

	final, err := p.fetcher.Fetch(ctx, src, staging)
	closeErr := staging.Close()
	if err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		span.RecordError(err)
		if !errors.Is(err, domain.ErrSourceUnreachable) {
			err = domain.Fail(domain.ErrSourceUnreachable, err, "fetch", "locator", src.Locator)
		}
		return "", err
	}

	span.SetAttribute("onto.final", final)
	return final, nil
}

func (p *Pipeline) parse(ctx context.Context, path, name string) (*domain.Graph, error) {
	ctx, span := p.tracer.Start(ctx, "parse")
	defer span.End()

	g, err := p.parser.Parse(ctx, path, name)
	if err == nil && g == nil {
		err = errors.New("parser returned no graph")
	}
	if err != nil {
		span.RecordError(err)
		if !errors.Is(err, domain.ErrInvalidContent) {
			err = domain.Fail(domain.ErrInvalidContent, err, "parse", "name", name)
		}
		return nil, err
	}

	span.SetAttribute("onto.triples", g.Len())
	return g, nil
}

// commit moves the validated document into the library, writes the cache
// entry and records provenance. Only the rename can fail the job.
func (p *Pipeline) commit(
	ctx context.Context,
	lib *domain.Library,
	src domain.Source,
	job *domain.ImportJob,
	stagingPath string,
	g *domain.Graph,
) error {
	_, span := p.tracer.Start(ctx, "commit")
	defer span.End()

	p.commitMu.Lock()
	defer p.commitMu.Unlock()

	prev, err := p.index.Lookup(job.Name)
	if err != nil {
		span.RecordError(err)
		return err
	}
	dst := lib.DocumentPath(job.Name)
	if prev != nil && prev.Locator != src.Locator {
		// A record whose document was deleted by hand no longer owns the name.
		if _, statErr := os.Lstat(dst); !errors.Is(statErr, os.ErrNotExist) {
			err := domain.Fail(domain.ErrNameCollision, nil, "filename already imported from another source",
				"name", job.Name, "existing", prev.Locator, "locator", src.Locator)
			span.RecordError(err)
			return err
		}
		p.logger.Debug(fmt.Sprintf("%s: replacing stale record from %s", job.Name, prev.Locator))
	}

	if err := os.Chmod(stagingPath, domain.FilePerm); err != nil {
		return domain.Fail(domain.ErrLibraryWriteFailed, err, "chmod staging file", "path", stagingPath)
	}
	if err := os.Rename(stagingPath, dst); err != nil {
		span.RecordError(err)
		return domain.Fail(domain.ErrLibraryWriteFailed, err, "move document into library", "path", dst)
	}
	job.Path = dst

	if err := p.cache.Put(job.Name, g); err != nil {
		job.CacheErr = err
		p.logger.Warn(fmt.Sprintf("%s imported but not cached: %v", job.Name, err))
	} else {
		job.Cached = true
	}

	digest, err := p.hasher.HashFile(dst)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("%s: digest unavailable: %v", job.Name, err))
	}
	if err := p.index.Record(&domain.Provenance{
		Name:       job.Name,
		Locator:    src.Locator,
		Final:      job.FinalLocation,
		Digest:     digest,
		ImportedAt: p.now().UTC(),
	}); err != nil {
		p.logger.Warn(fmt.Sprintf("%s: provenance not recorded: %v", job.Name, err))
	}

	return nil
}

func jobTimeout(lib *domain.Library) time.Duration {
	if lib == nil || lib.Config == nil {
		return 0
	}
	return lib.Config.Import.Timeout
}
