package anyblock

import (
	"net/http"
	"time"

	"github.com/olivere/elastic/v7"
)

// ClientCreator builds the underlying Elasticsearch client for an endpoint.
type ClientCreator interface {
	NewClient(endpointURL string, timeout time.Duration) (*elastic.Client, error)
}

var _ ClientCreator = (*ElasticClientCreator)(nil)

// ElasticClientCreator is the default ClientCreator.
type ElasticClientCreator struct{}

// NewClient builds a client pinned to the single endpoint URL. Sniffing and
// health checks are disabled: the hosted API exposes exactly one URL per
// network and must not be probed at construction time.
func (ec *ElasticClientCreator) NewClient(endpointURL string, timeout time.Duration) (*elastic.Client, error) {
	return elastic.NewClient(
		elastic.SetURL(endpointURL),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
		elastic.SetHttpClient(&http.Client{Timeout: timeout}),
	)
}
