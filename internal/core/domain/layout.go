package domain

import (
	"os"
	"path/filepath"
)

const (
	// HomeDirName is the name of the per-user repository directory.
	HomeDirName = ".onto"

	// HomeEnvVar overrides the repository directory.
	HomeEnvVar = "ONTO_HOME"

	// ConfigFileName is the name of the persisted library configuration.
	ConfigFileName = "config.yaml"

	// ModelsDirName is the name of the default library root.
	ModelsDirName = "models"

	// CacheDirName is the name of the cache directory. Entries live one level
	// deeper, under the cache format version.
	CacheDirName = ".cache"

	// VizDirName is the name of the visualization output directory.
	VizDirName = "viz"

	// IndexDirName is the name of the provenance index directory.
	IndexDirName = "index"

	// CacheFormatVersion namespaces cache entries. Bump it whenever the
	// serialized graph layout changes so stale entries are never decoded.
	CacheFormatVersion = "v1"

	// CacheFileExt is appended to a canonical filename to form its cache entry name.
	CacheFileExt = ".pickle"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout holds every path the repository uses. It is built once at startup
// and injected into the components that touch the filesystem.
type Layout struct {
	Home       string
	ConfigPath string
	// DefaultLibrary is the library root written to a fresh config.
	DefaultLibrary string
	CacheDir       string
	VizDir         string
	IndexDir       string
}

// NewLayout returns the layout rooted at home.
func NewLayout(home string) *Layout {
	home = filepath.Clean(home)
	return &Layout{
		Home:           home,
		ConfigPath:     filepath.Join(home, ConfigFileName),
		DefaultLibrary: filepath.Join(home, ModelsDirName),
		CacheDir:       filepath.Join(home, CacheDirName, CacheFormatVersion),
		VizDir:         filepath.Join(home, VizDirName),
		IndexDir:       filepath.Join(home, IndexDirName),
	}
}

// DefaultHome resolves the repository directory from ONTO_HOME, falling back
// to ~/.onto.
func DefaultHome() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return filepath.Abs(home)
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userHome, HomeDirName), nil
}

// RequiredDirs lists the directories that must exist before any import,
// cache or catalog operation.
func (l *Layout) RequiredDirs() []string {
	return []string{l.Home, l.CacheDir, l.VizDir, l.DefaultLibrary}
}

// CachePath returns the cache entry path for a canonical filename.
func (l *Layout) CachePath(name string) string {
	return filepath.Join(l.CacheDir, name+CacheFileExt)
}

// Library is a bootstrapped repository: the layout plus the library root
// resolved from the persisted config.
type Library struct {
	Layout *Layout
	Root   string
	Config *LibraryConfig
}

// DocumentPath returns the path of a raw document inside the library root.
func (l *Library) DocumentPath(name string) string {
	return filepath.Join(l.Root, name)
}
