package vnstat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bwgraph/internal/traffic"
)

// trimmed output of vnstat --json d 2
const vnstatOutput = `{"vnstatversion":"2.9","jsonversion":"2","interfaces":[
 {"name":"eth0","alias":"","created":{"date":{"year":2022,"month":3,"day":1},"timestamp":1646092800},
  "updated":{"date":{"year":2023,"month":1,"day":16},"time":{"hour":10,"minute":5},"timestamp":1673863500},
  "traffic":{"total":{"rx":10,"tx":20},
   "day":[{"id":1,"date":{"year":2023,"month":0,"day":15},"timestamp":1673740800,"rx":3221225472,"tx":1073741824},
          {"id":2,"date":{"year":2023,"month":0,"day":16},"timestamp":1673827200,"rx":5,"tx":6}]}}]}`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(vnstatOutput))
	require.NoError(t, err)
	require.Len(t, doc.Interfaces, 1)

	iface := doc.Interfaces[0]
	assert.Equal(t, "eth0", iface.Name)
	require.Len(t, iface.Traffic.Day, 2)
	assert.Empty(t, iface.Traffic.Hour)
	assert.Equal(t, traffic.Date{Year: 2023, Month: 0, Day: 15}, iface.Traffic.Day[0].Date)
	assert.Equal(t, uint64(3221225472), iface.Traffic.Day[0].Rx)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyOutput)

	_, err = Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestQueryValidate(t *testing.T) {
	assert.NoError(t, Query{Granularity: traffic.GranularityHour, Count: 12}.Validate())
	assert.ErrorIs(t, Query{Granularity: traffic.GranularityDay}.Validate(), ErrInvalidQuery)
	assert.ErrorIs(t, Query{Granularity: "week", Count: 1}.Validate(), ErrInvalidQuery)
	assert.Equal(t, "d:7", Query{Granularity: traffic.GranularityDay, Count: 7}.String())
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(vnstatOutput), 0o644))

	src := &FileSource{Path: path}
	doc, err := src.Fetch(context.Background(), Query{Granularity: traffic.GranularityDay, Count: 7})
	require.NoError(t, err)
	assert.Len(t, doc.Interfaces, 1)

	_, err = (&FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}).
		Fetch(context.Background(), Query{Granularity: traffic.GranularityDay, Count: 7})
	assert.Error(t, err)
}

func TestHTTPSource(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(vnstatOutput))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/data.json", 5*time.Second)
	doc, err := src.Fetch(context.Background(), Query{Granularity: traffic.GranularityHour, Count: 12})
	require.NoError(t, err)
	assert.Len(t, doc.Interfaces, 1)
	assert.Equal(t, "nr=12&ts=h", gotQuery)
}

func TestHTTPSourceStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, time.Second).
		Fetch(context.Background(), Query{Granularity: traffic.GranularityDay, Count: 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestCommandSourceArgs(t *testing.T) {
	src := NewCommandSource("", "eth0", time.Second, nil)
	assert.Equal(t, "vnstat", src.Binary)
	assert.Equal(t, []string{"--json", "h", "12", "-i", "eth0"},
		src.Args(Query{Granularity: traffic.GranularityHour, Count: 12}))
}

func fakeVnstat(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture")
	}
	path := filepath.Join(t.TempDir(), "vnstat")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestCommandSourceFetch(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(out, []byte(vnstatOutput), 0o644))
	bin := fakeVnstat(t, `[ "$1" = "--json" ] && [ "$2" = "d" ] && [ "$3" = "2" ] || exit 3
cat `+out+"\n")

	src := NewCommandSource(bin, "", 5*time.Second, nil)
	doc, err := src.Fetch(context.Background(), Query{Granularity: traffic.GranularityDay, Count: 2})
	require.NoError(t, err)
	assert.Len(t, doc.Interfaces[0].Traffic.Day, 2)
}

func TestCommandSourceFailure(t *testing.T) {
	bin := fakeVnstat(t, "echo 'Error: database not found' >&2\nexit 1\n")

	_, err := NewCommandSource(bin, "", 5*time.Second, nil).
		Fetch(context.Background(), Query{Granularity: traffic.GranularityDay, Count: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not found")

	empty := fakeVnstat(t, "exit 0\n")
	_, err = NewCommandSource(empty, "", 5*time.Second, nil).
		Fetch(context.Background(), Query{Granularity: traffic.GranularityDay, Count: 2})
	assert.True(t, errors.Is(err, ErrEmptyOutput))
}

type namedSource struct{}

func (namedSource) Name() string { return "named" }

func (namedSource) Fetch(ctx context.Context, q Query) (*traffic.Document, error) {
	return &traffic.Document{}, nil
}

func TestScopeOf(t *testing.T) {
	assert.Equal(t, "command:", ScopeOf(NewCommandSource("", "", time.Second, nil)))
	assert.Equal(t, "command:eth0", ScopeOf(NewCommandSource("", "eth0", time.Second, nil)))
	assert.Equal(t, "file:/tmp/a.json", ScopeOf(&FileSource{Path: "/tmp/a.json"}))
	assert.Equal(t, "http:http://router.lan/data.json", ScopeOf(NewHTTPSource("http://router.lan/data.json", time.Second)))
	assert.Equal(t, "named", ScopeOf(namedSource{}))
}
