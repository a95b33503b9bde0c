package domain

import "go.trai.ch/zerr"

// Error kinds. Every failure returned by the import and cache subsystem can be
// matched against exactly one of these with errors.Is.
var (
	// ErrSourceUnreachable is returned when a locator cannot be fetched or copied.
	ErrSourceUnreachable = zerr.New("source unreachable")

	// ErrInvalidContent is returned when fetched bytes fail parser validation.
	ErrInvalidContent = zerr.New("invalid ontology content")

	// ErrCacheCorrupt is returned when an existing cache entry cannot be decoded.
	ErrCacheCorrupt = zerr.New("cache entry corrupt")

	// ErrCacheWrite is returned when a parsed graph cannot be written to the cache.
	ErrCacheWrite = zerr.New("failed to write cache entry")

	// ErrDirectoryMissing is returned when the configured library root no longer exists.
	ErrDirectoryMissing = zerr.New("library directory missing")

	// ErrInvalidSelection is returned when interactive input does not name a catalog entry.
	ErrInvalidSelection = zerr.New("invalid selection")

	// ErrSelectionCancelled is returned when the user quits an interactive selection.
	ErrSelectionCancelled = zerr.New("selection cancelled")

	// ErrLibraryEmpty is returned when an operation needs at least one library entry.
	ErrLibraryEmpty = zerr.New("local library is empty")

	// ErrNameCollision is returned when a locator resolves to a filename already owned by another locator.
	ErrNameCollision = zerr.New("canonical filename already used by another source")

	// ErrInvalidLocator is returned when a locator is empty or cannot be parsed.
	ErrInvalidLocator = zerr.New("invalid locator")

	// ErrEntryNotFound is returned when a named library entry does not exist.
	ErrEntryNotFound = zerr.New("library entry not found")

	// ErrDepthExceeded is returned by the graph codec when a hierarchy is deeper than its capacity.
	ErrDepthExceeded = zerr.New("graph reference depth exceeds serializer capacity")

	// ErrRepositoryCreateFailed is returned when the home directory tree cannot be created.
	ErrRepositoryCreateFailed = zerr.New("failed to create local repository")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid config")

	// ErrConfigWriteFailed is returned when the config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrIndexFailed is returned when the provenance index cannot be read or updated.
	ErrIndexFailed = zerr.New("provenance index operation failed")

	// ErrLibraryWriteFailed is returned when a validated document cannot be moved into the library.
	ErrLibraryWriteFailed = zerr.New("failed to write library document")

	// ErrBulkImportFailed is returned when at least one job of a bulk import failed.
	ErrBulkImportFailed = zerr.New("bulk import finished with failures")

	// ErrConfirmationRequired is returned when a destructive command needs a yes/no answer
	// but stdin is not a terminal.
	ErrConfirmationRequired = zerr.New("confirmation required, rerun with --yes")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics textfile")

	// ErrVocabularyListInvalid is returned when an online vocabulary directory
	// answers with something other than a vocabulary list.
	ErrVocabularyListInvalid = zerr.New("vocabulary directory returned an unreadable list")
)

// kindError tags a cause with one of the error kinds above.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return e.cause.Error()
}

// Message reports the kind without the cause chain. The logger uses it to
// render "Caused by" sections.
func (e *kindError) Message() string {
	return e.kind.Error()
}

func (e *kindError) Unwrap() error {
	return e.cause
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

// Fail wraps cause with msg and the given key/value metadata and tags the
// result with kind, so errors.Is(result, kind) holds.
// A nil cause produces an error carrying only the kind and metadata.
func Fail(kind, cause error, msg string, keyvals ...any) error {
	var err error
	if cause == nil {
		err = zerr.New(msg)
	} else {
		err = zerr.Wrap(cause, msg)
	}
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		err = zerr.With(err, key, keyvals[i+1])
	}
	return &kindError{kind: kind, cause: err}
}
