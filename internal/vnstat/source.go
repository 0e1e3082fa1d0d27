package vnstat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"bwgraph/internal/traffic"
)

var (
	ErrEmptyOutput  = errors.New("empty traffic document")
	ErrInvalidQuery = errors.New("invalid query")
)

// Query selects the periods of a traffic document.
type Query struct {
	Granularity traffic.Granularity
	Count       int
}

func (q Query) Validate() error {
	if q.Granularity != traffic.GranularityDay && q.Granularity != traffic.GranularityHour {
		return fmt.Errorf("%w: granularity %q", ErrInvalidQuery, q.Granularity)
	}
	if q.Count <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidQuery, q.Count)
	}
	return nil
}

func (q Query) String() string {
	return fmt.Sprintf("%s:%d", q.Granularity.Short(), q.Count)
}

// Source fetches traffic documents.
type Source interface {
	Fetch(ctx context.Context, q Query) (*traffic.Document, error)
	Name() string
}

// Scoper is implemented by sources whose documents depend on their settings
// (which interface, which file or host). Scope identifies those settings.
type Scoper interface {
	Scope() string
}

// ScopeOf returns src's Scope, or its Name when it has none.
func ScopeOf(src Source) string {
	if s, ok := src.(Scoper); ok {
		return s.Scope()
	}
	return src.Name()
}

// Decode parses a vnstat JSON document. Fields this program does not use
// (vnstatversion, totals, timestamps, ...) are ignored.
func Decode(r io.Reader) (*traffic.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyOutput
	}
	doc := &traffic.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}
