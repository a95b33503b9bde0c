// Package config reads and writes the persisted library configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigStore = (*FileStore)(nil)

// configFile is the on-disk shape of config.yaml.
type configFile struct {
	Models    modelsSection  `yaml:"models"`
	Import    importSection  `yaml:"import"`
	Metrics   metricsSection `yaml:"metrics,omitempty"`
	Web       webSection     `yaml:"web,omitempty"`
	Bootstrap []string       `yaml:"bootstrap,omitempty"`
}

type modelsSection struct {
	Dir string `yaml:"dir"`
}

type importSection struct {
	Workers int     `yaml:"workers,omitempty"`
	Timeout string  `yaml:"timeout,omitempty"`
	Rate    float64 `yaml:"rate,omitempty"`
}

type metricsSection struct {
	Textfile string `yaml:"textfile,omitempty"`
}

type webSection struct {
	Directory string `yaml:"directory,omitempty"`
}

// FileStore implements ports.ConfigStore using a YAML file.
type FileStore struct {
	validate *validator.Validate
}

// NewFileStore creates a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{validate: validator.New()}
}

// Load reads the config at path. Returns nil, nil if the file does not exist.
// models.dir is returned as found, possibly empty; every other key falls back
// to its default.
func (s *FileStore) Load(path string) (*domain.LibraryConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the layout
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.Fail(domain.ErrConfigReadFailed, err, "read config", "path", path)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, domain.Fail(domain.ErrConfigParseFailed, err, "parse config", "path", path)
	}

	cfg, err := fromFile(&file)
	if err != nil {
		return nil, domain.Fail(domain.ErrConfigInvalid, err, "convert config", "path", path)
	}

	if err := s.validate.Struct(&cfg.Import); err != nil {
		return nil, domain.Fail(domain.ErrConfigInvalid, err, "validate import section", "path", path)
	}
	if err := s.validate.Var(cfg.Bootstrap, "dive,required"); err != nil {
		return nil, domain.Fail(domain.ErrConfigInvalid, err, "validate bootstrap list", "path", path)
	}
	if err := s.validate.Struct(&cfg.Web); err != nil {
		return nil, domain.Fail(domain.ErrConfigInvalid, err, "validate web section", "path", path)
	}

	return cfg, nil
}

// Save validates cfg and writes it to path atomically.
func (s *FileStore) Save(path string, cfg *domain.LibraryConfig) error {
	if err := s.validate.Struct(cfg); err != nil {
		return domain.Fail(domain.ErrConfigInvalid, err, "validate config", "path", path)
	}

	data, err := yaml.Marshal(toFile(cfg))
	if err != nil {
		return domain.Fail(domain.ErrConfigWriteFailed, err, "marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return domain.Fail(domain.ErrConfigWriteFailed, err, "create config directory", "path", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.yaml")
	if err != nil {
		return domain.Fail(domain.ErrConfigWriteFailed, err, "create temp config", "path", path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return domain.Fail(domain.ErrConfigWriteFailed, err, "write config", "path", path)
	}
	if err := tmp.Close(); err != nil {
		return domain.Fail(domain.ErrConfigWriteFailed, err, "close config", "path", path)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return domain.Fail(domain.ErrConfigWriteFailed, err, "chmod config", "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return domain.Fail(domain.ErrConfigWriteFailed, err, "replace config", "path", path)
	}

	return nil
}

func fromFile(file *configFile) (*domain.LibraryConfig, error) {
	cfg := domain.DefaultLibraryConfig(file.Models.Dir)
	cfg.Metrics.Textfile = file.Metrics.Textfile
	cfg.Web.Directory = file.Web.Directory
	cfg.Bootstrap = file.Bootstrap
	cfg.Import.Rate = file.Import.Rate

	if file.Import.Workers != 0 {
		cfg.Import.Workers = file.Import.Workers
	}

	if file.Import.Timeout != "" {
		d, err := time.ParseDuration(file.Import.Timeout)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid import.timeout"), "timeout", file.Import.Timeout)
		}
		cfg.Import.Timeout = d
	}

	return cfg, nil
}

func toFile(cfg *domain.LibraryConfig) *configFile {
	return &configFile{
		Models: modelsSection{Dir: cfg.Models.Dir},
		Import: importSection{
			Workers: cfg.Import.Workers,
			Timeout: cfg.Import.Timeout.String(),
			Rate:    cfg.Import.Rate,
		},
		Metrics:   metricsSection{Textfile: cfg.Metrics.Textfile},
		Web:       webSection{Directory: cfg.Web.Directory},
		Bootstrap: cfg.Bootstrap,
	}
}
