package vnstat

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bwgraph/internal/traffic"
)

// HTTPSource fetches data.json?ts=<d|h>&nr=<count> from another bwgraph (or
// any compatible) endpoint.
type HTTPSource struct {
	URL    string
	client *http.Client
}

func NewHTTPSource(rawURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		URL: rawURL,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (s *HTTPSource) Name() string {
	return "http"
}

func (s *HTTPSource) Scope() string {
	return "http:" + s.URL
}

func (s *HTTPSource) requestURL(q Query) (string, error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	values := u.Query()
	values.Set("ts", q.Granularity.Short())
	values.Set("nr", strconv.Itoa(q.Count))
	u.RawQuery = values.Encode()
	return u.String(), nil
}

func (s *HTTPSource) Fetch(ctx context.Context, q Query) (*traffic.Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	u, err := s.requestURL(q)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %s", u, resp.Status)
	}
	return Decode(resp.Body)
}
