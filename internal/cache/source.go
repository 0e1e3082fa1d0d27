package cache

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"bwgraph/internal/metrics"
	"bwgraph/internal/traffic"
	"bwgraph/internal/vnstat"
)

// Source is a read-through cache in front of another source. Cache errors
// are logged and the inner source is used instead.
type Source struct {
	inner  vnstat.Source
	scope  string
	store  *Store
	logger *logrus.Entry
}

func NewSource(inner vnstat.Source, store *Store) *Source {
	return &Source{
		inner:  inner,
		scope:  vnstat.ScopeOf(inner),
		store:  store,
		logger: store.logger,
	}
}

func (s *Source) Name() string {
	return "cache+" + s.inner.Name()
}

func (s *Source) Fetch(ctx context.Context, q vnstat.Query) (*traffic.Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	doc, fetchedAt, err := s.store.GetDocument(s.scope, q)
	if err != nil {
		s.logger.WithError(err).Warnf("read cached document %s", q)
	} else if doc != nil {
		metrics.CacheHit()
		s.logger.Debugf("cache hit %s, fetched at %s", q, fetchedAt.Format(time.RFC3339))
		return doc, nil
	}
	metrics.CacheMiss()
	return s.Refresh(ctx, q)
}

// Refresh fetches q from the inner source and stores the result.
func (s *Source) Refresh(ctx context.Context, q vnstat.Query) (*traffic.Document, error) {
	start := time.Now()
	doc, err := s.inner.Fetch(ctx, q)
	metrics.ObserveFetch(s.inner.Name(), err, time.Since(start))
	if err != nil {
		return nil, err
	}
	if err := s.store.SetDocument(s.scope, q, doc); err != nil {
		s.logger.WithError(err).Warnf("store document %s", q)
	}
	return doc, nil
}

// Warm refreshes every query in qs. It stops at the first error.
func (s *Source) Warm(ctx context.Context, qs []vnstat.Query) error {
	for _, q := range qs {
		if _, err := s.Refresh(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
