package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"bwgraph/internal/traffic"
	"bwgraph/internal/vnstat"
	"bwgraph/pkg/log"
)

const documentKeyPrefix = "doc:"

type cachedDocument struct {
	FetchedAt int64             `json:"fetchedAt"`
	Document  *traffic.Document `json:"document"`
}

// Store keeps fetched traffic documents in badger. Entries expire after ttl.
type Store struct {
	db     *badger.DB
	ttl    time.Duration
	logger *logrus.Entry
}

// Open opens the store in dir. An empty dir keeps everything in memory.
func Open(dir string, ttl time.Duration, logger *logrus.Entry) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	if logger == nil {
		logger = log.NewLogger()
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open cache %q: %w", dir, err)
	}
	return &Store{
		db:     db,
		ttl:    ttl,
		logger: logger.WithField("component", "cache"),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// documentKey is doc:<scope>|<ts>:<nr>. The scope keeps documents of
// different backends or interfaces apart.
func documentKey(scope string, q vnstat.Query) []byte {
	return []byte(documentKeyPrefix + scope + "|" + q.String())
}

// Get returns nil, nil when the key is absent or expired.
func (s *Store) Get(key []byte) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *Store) Set(key, val []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(key, val)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		return txn.SetEntry(e)
	})
}

func (s *Store) Delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (s *Store) GetDocument(scope string, q vnstat.Query) (*traffic.Document, time.Time, error) {
	val, err := s.Get(documentKey(scope, q))
	if err != nil || val == nil {
		return nil, time.Time{}, err
	}
	cd := &cachedDocument{}
	if err := json.Unmarshal(val, cd); err != nil {
		return nil, time.Time{}, fmt.Errorf("unmarshal cached document %s: %w", q, err)
	}
	return cd.Document, time.Unix(cd.FetchedAt, 0), nil
}

func (s *Store) SetDocument(scope string, q vnstat.Query, doc *traffic.Document) error {
	val, err := json.Marshal(cachedDocument{
		FetchedAt: time.Now().Unix(),
		Document:  doc,
	})
	if err != nil {
		return err
	}
	return s.Set(documentKey(scope, q), val)
}

// Keys lists the cached documents as <scope>|<ts>:<nr>.
func (s *Store) Keys() ([]string, error) {
	prefix := []byte(documentKeyPrefix)
	keys := make([]string, 0, 4)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Purge drops every cached document.
func (s *Store) Purge() error {
	return s.db.DropPrefix([]byte(documentKeyPrefix))
}
