// Package fs owns the on-disk repository: the home tree, the library root
// and document digests.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
)

var _ ports.Repository = (*Bootstrapper)(nil)

// RemedyCommand is printed when the configured library root is gone.
const RemedyCommand = "onto init --library <path>"

// Bootstrapper implements ports.Repository.
type Bootstrapper struct {
	layout *domain.Layout
	config ports.ConfigStore
	logger ports.Logger
}

// NewBootstrapper creates a Bootstrapper for layout.
func NewBootstrapper(layout *domain.Layout, config ports.ConfigStore, logger ports.Logger) *Bootstrapper {
	return &Bootstrapper{layout: layout, config: config, logger: logger}
}

// Ensure creates or repairs the home tree and resolves the library root.
func (b *Bootstrapper) Ensure(_ context.Context, reset bool) (*domain.Library, error) {
	fresh, err := b.isFresh()
	if err != nil {
		return nil, err
	}

	if fresh || reset {
		return b.recreate()
	}

	if err := b.repairDirs(); err != nil {
		return nil, err
	}

	cfg, err := b.config.Load(b.layout.ConfigPath)
	if err != nil {
		return nil, err
	}

	switch {
	case cfg == nil:
		cfg = domain.DefaultLibraryConfig(b.layout.DefaultLibrary)
		if err := b.config.Save(b.layout.ConfigPath, cfg); err != nil {
			return nil, err
		}
		b.logger.Debug("wrote default config to " + b.layout.ConfigPath)
	case cfg.Models.Dir == "":
		cfg.Models.Dir = b.layout.DefaultLibrary
		if err := b.config.Save(b.layout.ConfigPath, cfg); err != nil {
			return nil, err
		}
		b.logger.Debug("filled missing models.dir in " + b.layout.ConfigPath)
	}

	info, err := os.Stat(cfg.Models.Dir)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = errors.New("not a directory")
		}
		return nil, domain.Fail(domain.ErrDirectoryMissing, err, "configured library root does not exist",
			"dir", cfg.Models.Dir,
			"config", b.layout.ConfigPath,
			"remedy", RemedyCommand,
		)
	}

	return &domain.Library{Layout: b.layout, Root: cfg.Models.Dir, Config: cfg}, nil
}

// SetLibraryRoot points the config at dir, creating dir and the base tree if needed.
func (b *Bootstrapper) SetLibraryRoot(_ context.Context, dir string) (*domain.Library, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, domain.Fail(domain.ErrRepositoryCreateFailed, err, "resolve library path", "dir", dir)
	}

	if err := b.repairDirs(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, domain.DirPerm); err != nil {
		return nil, domain.Fail(domain.ErrRepositoryCreateFailed, err, "create library root", "dir", abs)
	}

	cfg, err := b.config.Load(b.layout.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = domain.DefaultLibraryConfig(abs)
	}
	cfg.Models.Dir = abs

	if err := b.config.Save(b.layout.ConfigPath, cfg); err != nil {
		return nil, err
	}
	b.logger.Info("library root set to " + abs)

	return &domain.Library{Layout: b.layout, Root: abs, Config: cfg}, nil
}

func (b *Bootstrapper) isFresh() (bool, error) {
	_, err := os.Stat(b.layout.Home)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, domain.Fail(domain.ErrRepositoryCreateFailed, err, "stat home directory", "home", b.layout.Home)
	}
}

func (b *Bootstrapper) recreate() (*domain.Library, error) {
	if err := os.RemoveAll(b.layout.Home); err != nil {
		return nil, domain.Fail(domain.ErrRepositoryCreateFailed, err, "remove existing repository", "home", b.layout.Home)
	}
	if err := b.repairDirs(); err != nil {
		return nil, err
	}

	cfg := domain.DefaultLibraryConfig(b.layout.DefaultLibrary)
	if err := b.config.Save(b.layout.ConfigPath, cfg); err != nil {
		return nil, err
	}
	b.logger.Info("created local repository at " + b.layout.Home)

	return &domain.Library{Layout: b.layout, Root: cfg.Models.Dir, Config: cfg}, nil
}

// repairDirs creates whichever required directories are missing.
func (b *Bootstrapper) repairDirs() error {
	for _, dir := range b.layout.RequiredDirs() {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return domain.Fail(domain.ErrRepositoryCreateFailed, err, "create directory", "dir", dir)
		}
	}
	return nil
}
