package anyblock

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/olivere/elastic/v7"

	"github.com/CaronSch/ethdenver-bufficornanalytics/network"
)

// DefaultRequestTimeout bounds every request issued through a factory-built
// client. It mirrors the service's documented request limit.
const DefaultRequestTimeout = 60 * time.Second

// baseURLFormat is the authenticated root of the hosted Elasticsearch API.
// The credential travels as basic auth inside the URL; this is the shape the
// service documents. See https://www.anyblockanalytics.com/docs/elastic/.
const baseURLFormat = "https://tech%%40anyblockanalytics.com:%s@api.anyblock.tools"

// ErrBaseURLNotSet is returned when a client is requested from a factory that
// was built without an API key.
var ErrBaseURLNotSet = errors.New("elasticsearch base URL is not defined")

// Factory hands out Elasticsearch clients scoped to AnyBlock networks.
//
// Clients are cached per network key, so at most one client is ever built for
// a given network through one factory. The cache lives and dies with the
// factory instance.
type Factory struct {
	baseURL string
	creator ClientCreator

	mu      sync.Mutex
	clients map[string]*elastic.Client
}

// NewFactory returns a factory authenticated with the given API key. An empty
// key is accepted here; the error surfaces on first client access.
func NewFactory(apiKey string) *Factory {
	return NewFactoryWithCreator(apiKey, &ElasticClientCreator{})
}

// NewFactoryWithCreator returns a factory that builds its underlying clients
// through the given creator.
func NewFactoryWithCreator(apiKey string, creator ClientCreator) *Factory {
	var baseURL string
	if apiKey != "" {
		baseURL = fmt.Sprintf(baseURLFormat, apiKey)
	}

	return &Factory{
		baseURL: baseURL,
		creator: creator,
		clients: map[string]*elastic.Client{},
	}
}

// Endpoint returns the search API URL for the given network. It is a pure
// function of the factory credential and the descriptor fields; the fields
// are embedded into the URL as-is, without validation.
func (f *Factory) Endpoint(n network.Network) string {
	base := strings.TrimRight(f.baseURL, "/")

	return fmt.Sprintf("%s/%s/%s/%s/es", base, n.Technology, n.Blockchain, n.Network)
}

// Client returns the cached Elasticsearch client for the network, building
// and caching it on first use. Building a client performs no network I/O; the
// connection is established lazily on the first actual request.
func (f *Factory) Client(n network.Network) (*elastic.Client, error) {
	if f.baseURL == "" {
		return nil, ErrBaseURLNotSet
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	key := n.Key()
	if c, ok := f.clients[key]; ok {
		return c, nil
	}

	c, err := f.creator.NewClient(f.Endpoint(n), DefaultRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to build client for %s: %w", key, err)
	}
	f.clients[key] = c

	return c, nil
}

// Search returns a search service bound to the network's cached client. A
// fresh service is built on every call; only the client underneath is shared.
func (f *Factory) Search(n network.Network) (*elastic.SearchService, error) {
	c, err := f.Client(n)
	if err != nil {
		return nil, err
	}

	return c.Search(), nil
}

// Ping checks connectivity against the network's endpoint and returns the
// cluster info reported by the service.
func (f *Factory) Ping(ctx context.Context, n network.Network) (*elastic.PingResult, error) {
	c, err := f.Client(n)
	if err != nil {
		return nil, err
	}

	result, code, err := c.Ping(f.Endpoint(n)).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ping %s: %w", n.Key(), err)
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", code, n.Key())
	}

	return result, nil
}
