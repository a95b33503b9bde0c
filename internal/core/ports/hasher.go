package ports

// Hasher computes content digests of library documents.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns the hex digest of the file at path.
	HashFile(path string) (string, error)
}
