package domain

import "time"

const (
	// DefaultWorkers is the default bulk import pool size.
	DefaultWorkers = 5

	// DefaultJobTimeout bounds a single import job.
	DefaultJobTimeout = 2 * time.Minute
)

// DefaultBootstrapSources is the sample library installed by `onto bootstrap`.
var DefaultBootstrapSources = []string{
	"http://xmlns.com/foaf/spec/",
	"http://www.w3.org/TR/2003/PR-owl-guide-20031209/wine",
	"http://purl.uniprot.org/core/",
	"http://purl.org/spar/cito/",
	"http://ns.nature.com/terms/",
	"http://www.ontologydesignpatterns.org/ont/dul/DUL.owl",
	"http://www.ifomis.org/bfo/1.1",
	"http://topbraid.org/schema/schema.ttl",
	"http://www.cidoc-crm.org/rdfs/cidoc_crm_v6.0-draft-2015January.rdfs",
}

// LibraryConfig is the persisted repository configuration.
type LibraryConfig struct {
	Models    ModelsConfig  `yaml:"models"`
	Import    ImportConfig  `yaml:"import"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Web       WebConfig     `yaml:"web"`
	Bootstrap []string      `yaml:"bootstrap,omitempty" validate:"dive,required"`
}

// ModelsConfig locates the library root.
type ModelsConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

// ImportConfig tunes the import pipeline and the bulk importer.
type ImportConfig struct {
	Workers int           `yaml:"workers" validate:"gte=1,lte=64"`
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
	// Rate caps how many jobs may start per second in bulk mode. Zero disables pacing.
	Rate float64 `yaml:"rate" validate:"gte=0"`
}

// MetricsConfig configures the optional Prometheus textfile output.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// WebConfig points `onto web` at an online vocabulary directory.
type WebConfig struct {
	Directory string `yaml:"directory,omitempty" validate:"omitempty,url"`
}

// DefaultLibraryConfig returns the config written on first bootstrap.
func DefaultLibraryConfig(root string) *LibraryConfig {
	return &LibraryConfig{
		Models: ModelsConfig{Dir: root},
		Import: ImportConfig{
			Workers: DefaultWorkers,
			Timeout: DefaultJobTimeout,
		},
	}
}

// BootstrapSources returns the configured sample list, or the built-in one.
func (c *LibraryConfig) BootstrapSources() []string {
	if len(c.Bootstrap) > 0 {
		return c.Bootstrap
	}
	return DefaultBootstrapSources
}

// VocabularyDirectory returns the configured directory URL, or the LOV list.
func (c *LibraryConfig) VocabularyDirectory() string {
	if c.Web.Directory != "" {
		return c.Web.Directory
	}
	return DefaultVocabularyDirectory
}
