package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bwgraph/internal/traffic"
	"bwgraph/internal/vnstat"
)

type countingSource struct {
	calls int
	err   error
}

func (c *countingSource) Name() string { return "counting" }

func (c *countingSource) Fetch(ctx context.Context, q vnstat.Query) (*traffic.Document, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &traffic.Document{Interfaces: []traffic.Interface{{
		Name: "eth0",
		Traffic: traffic.Series{Day: []traffic.Period{{
			Date: traffic.Date{Year: 2023, Month: 0, Day: 15}, Rx: uint64(c.calls), Tx: 2,
		}}},
	}}}, nil
}

func openStore(t *testing.T, dir string, ttl time.Duration) *Store {
	t.Helper()
	s, err := Open(dir, ttl, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

var dayQuery = vnstat.Query{Granularity: traffic.GranularityDay, Count: 7}

func TestStoreDocumentRoundTrip(t *testing.T) {
	s := openStore(t, t.TempDir(), time.Hour)

	doc, _, err := s.GetDocument("command:", dayQuery)
	require.NoError(t, err)
	assert.Nil(t, doc)

	want := &traffic.Document{Interfaces: []traffic.Interface{{Name: "eth0"}}}
	require.NoError(t, s.SetDocument("command:", dayQuery, want))

	got, fetchedAt, err := s.GetDocument("command:", dayQuery)
	require.NoError(t, err)
	assert.Equal(t, "eth0", got.Interfaces[0].Name)
	assert.WithinDuration(t, time.Now(), fetchedAt, 2*time.Second)

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"command:|d:7"}, keys)

	other, _, err := s.GetDocument("command:eth1", dayQuery)
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, s.Purge())
	got, _, err = s.GetDocument("command:", dayQuery)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreDelete(t *testing.T) {
	s := openStore(t, "", 0)
	require.NoError(t, s.Set([]byte("k"), []byte("v")))
	v, err := s.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	require.NoError(t, s.Delete([]byte("k")))
	v, err = s.Get([]byte("k"))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSourceReadThrough(t *testing.T) {
	inner := &countingSource{}
	src := NewSource(inner, openStore(t, "", time.Hour))
	assert.Equal(t, "cache+counting", src.Name())

	for i := 0; i < 3; i++ {
		doc, err := src.Fetch(context.Background(), dayQuery)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), doc.Interfaces[0].Traffic.Day[0].Rx)
	}
	assert.Equal(t, 1, inner.calls)

	// a different query is a different entry
	_, err := src.Fetch(context.Background(), vnstat.Query{Granularity: traffic.GranularityHour, Count: 12})
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)

	require.NoError(t, src.Warm(context.Background(), []vnstat.Query{dayQuery}))
	doc, err := src.Fetch(context.Background(), dayQuery)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), doc.Interfaces[0].Traffic.Day[0].Rx)
}

func TestSourcesDoNotShareEntries(t *testing.T) {
	store := openStore(t, "", time.Hour)
	eth0 := NewSource(vnstat.NewCommandSource("vnstat", "eth0", time.Second, nil), store)
	file := NewSource(&vnstat.FileSource{Path: "testdata/missing.json"}, store)

	// seed the eth0 entry without running vnstat
	doc := &traffic.Document{Interfaces: []traffic.Interface{{Name: "eth0"}}}
	require.NoError(t, store.SetDocument("command:eth0", dayQuery, doc))

	got, err := eth0.Fetch(context.Background(), dayQuery)
	require.NoError(t, err)
	assert.Equal(t, "eth0", got.Interfaces[0].Name)

	// same query against another backend misses and reaches the file
	_, err = file.Fetch(context.Background(), dayQuery)
	assert.Error(t, err)

	inner := &countingSource{}
	counting := NewSource(inner, store)
	_, err = counting.Fetch(context.Background(), dayQuery)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"command:eth0|d:7", "counting|d:7"}, keys)
}

func TestSourceErrorNotCached(t *testing.T) {
	inner := &countingSource{err: errors.New("vnstat missing")}
	src := NewSource(inner, openStore(t, "", time.Hour))

	_, err := src.Fetch(context.Background(), dayQuery)
	require.Error(t, err)
	_, err = src.Fetch(context.Background(), dayQuery)
	require.Error(t, err)
	assert.Equal(t, 2, inner.calls)

	assert.Error(t, src.Warm(context.Background(), []vnstat.Query{dayQuery}))
}

func TestSourceRejectsInvalidQuery(t *testing.T) {
	inner := &countingSource{}
	src := NewSource(inner, openStore(t, "", time.Hour))
	_, err := src.Fetch(context.Background(), vnstat.Query{Granularity: traffic.GranularityDay})
	assert.ErrorIs(t, err, vnstat.ErrInvalidQuery)
	assert.Zero(t, inner.calls)
}

func TestWarmer(t *testing.T) {
	inner := &countingSource{}
	src := NewSource(inner, openStore(t, "", time.Hour))

	_, err := NewWarmer("every tuesday-ish", src, nil, time.Second)
	assert.Error(t, err)

	w, err := NewWarmer("@every 1h", src, []vnstat.Query{dayQuery}, time.Second)
	require.NoError(t, err)
	w.run()
	assert.Equal(t, 1, inner.calls)
	w.Start()
	w.Stop()
}
