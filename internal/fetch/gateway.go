package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"shelf/internal/catalog"
	"shelf/internal/logging"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Gateway retrieves the catalog with a single GET to a fixed endpoint. It
// never retries; the caller decides what a failure means.
type Gateway struct {
	endpoint string
	client   *http.Client
	log      zerolog.Logger
}

type Option func(*Gateway)

func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		g.client = client
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		c := *g.client
		c.Timeout = d
		g.client = &c
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(g *Gateway) {
		g.log = log
	}
}

func NewGateway(endpoint string, opts ...Option) *Gateway {
	g := &Gateway{
		endpoint: endpoint,
		client:   &http.Client{},
		log:      logging.Nop,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) FetchCatalog(ctx context.Context) ([]catalog.Product, error) {
	log := g.log.With().Str("fetch_id", uuid.NewString()).Str("endpoint", g.endpoint).Logger()
	start := time.Now()
	log.Debug().Msg("fetching catalog")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Source: g.endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: g.endpoint, Err: err}
	}

	items, err := decodeResponse(resp)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			fe.Source = g.endpoint
			return nil, fe
		}
		return nil, &FetchError{Source: g.endpoint, Err: err}
	}

	log.Debug().
		Int("count", len(items)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched catalog")
	return items, nil
}

func decodeResponse(resp *http.Response) ([]catalog.Product, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	return decodeJSON(resp.Body)
}

func decodeJSON(r io.Reader) ([]catalog.Product, error) {
	dec := json.NewDecoder(r)
	var items []catalog.Product
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if items == nil {
		return nil, errNotArray
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return items, nil
}
