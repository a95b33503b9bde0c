// Package index records where every library document came from.
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
)

var _ ports.SourceIndex = (*Index)(nil)

const keyPrefix = "prov/"

// Index implements ports.SourceIndex on an embedded badger database. The
// database is opened on first use so commands that never touch provenance
// do not take the directory lock.
type Index struct {
	dir      string
	inMemory bool
	logger   ports.Logger

	mu  sync.Mutex
	db  *badger.DB
	err error
}

// New returns an Index persisted under dir.
func New(dir string, logger ports.Logger) *Index {
	return &Index{dir: dir, logger: logger}
}

// NewInMemory returns an Index that keeps nothing on disk.
func NewInMemory(logger ports.Logger) *Index {
	return &Index{inMemory: true, logger: logger}
}

func (i *Index) open() (*badger.DB, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.db != nil || i.err != nil {
		return i.db, i.err
	}

	var opts badger.Options
	if i.inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(i.dir, domain.DirPerm); err != nil {
			i.err = domain.Fail(domain.ErrIndexFailed, err, "create index directory", "dir", i.dir)
			return nil, i.err
		}
		opts = badger.DefaultOptions(i.dir).WithSyncWrites(true)
	}
	opts = opts.WithNumVersionsToKeep(1).WithLogger(&badgerLogger{logger: i.logger})

	db, err := badger.Open(opts)
	if err != nil {
		i.err = domain.Fail(domain.ErrIndexFailed, err, "open index", "dir", i.dir)
		return nil, i.err
	}
	i.db = db
	return db, nil
}

// Lookup returns the record for name, or nil when there is none.
func (i *Index) Lookup(name string) (*domain.Provenance, error) {
	db, err := i.open()
	if err != nil {
		return nil, err
	}

	var p *domain.Provenance
	err = db.View(func(txn *badger.Txn) error {
		var getErr error
		p, getErr = get(txn, name)
		return getErr
	})
	if err != nil {
		return nil, domain.Fail(domain.ErrIndexFailed, err, "lookup", "name", name)
	}
	return p, nil
}

// Record stores p under p.Name, replacing any previous record.
func (i *Index) Record(p *domain.Provenance) error {
	db, err := i.open()
	if err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return domain.Fail(domain.ErrIndexFailed, err, "encode record", "name", p.Name)
	}
	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(p.Name), data)
	})
	if err != nil {
		return domain.Fail(domain.ErrIndexFailed, err, "record", "name", p.Name)
	}
	return nil
}

// Delete removes the record for name. Deleting a missing record is not an error.
func (i *Index) Delete(name string) error {
	db, err := i.open()
	if err != nil {
		return err
	}

	err = db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(name))
	})
	if err != nil {
		return domain.Fail(domain.ErrIndexFailed, err, "delete", "name", name)
	}
	return nil
}

// Rename moves the record for oldName to newName in one transaction.
// Renaming a missing record is not an error.
func (i *Index) Rename(oldName, newName string) error {
	db, err := i.open()
	if err != nil {
		return err
	}

	err = db.Update(func(txn *badger.Txn) error {
		p, err := get(txn, oldName)
		if err != nil || p == nil {
			return err
		}
		p.Name = newName
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if err := txn.Set(key(newName), data); err != nil {
			return err
		}
		return txn.Delete(key(oldName))
	})
	if err != nil {
		return domain.Fail(domain.ErrIndexFailed, err, "rename", "from", oldName, "to", newName)
	}
	return nil
}

// Close releases the database if it was opened.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.db == nil {
		return nil
	}
	err := i.db.Close()
	i.db = nil
	if err != nil {
		return domain.Fail(domain.ErrIndexFailed, err, "close index")
	}
	return nil
}

func get(txn *badger.Txn, name string) (*domain.Provenance, error) {
	item, err := txn.Get(key(name))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p domain.Provenance
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &p)
	}); err != nil {
		return nil, err
	}
	return &p, nil
}

func key(name string) []byte {
	return []byte(keyPrefix + name)
}

// badgerLogger adapts ports.Logger to badger's logger. Badger's info output
// is demoted to debug.
type badgerLogger struct {
	logger ports.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Warn("index: " + trim(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn("index: " + trim(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug("index: " + trim(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug("index: " + trim(fmt.Sprintf(format, args...)))
}

func trim(s string) string {
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}
