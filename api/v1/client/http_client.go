package client

import (
	"context"

	log "github.com/sirupsen/logrus"

	v1 "github.com/kenlhlui/go-archiveit/api/v1"
	"github.com/kenlhlui/go-archiveit/api/v1/objects"
	"github.com/kenlhlui/go-archiveit/pkg/transport"
)

type httpClient struct {
	transport *transport.Transport
	log       *log.Entry

	account *objects.Account

	seed v1.V1Seed
}

func (c *httpClient) Seed() v1.V1Seed {
	return c.seed
}

func (c *httpClient) Account() *objects.Account {
	return c.account
}

// Do is the raw escape hatch for endpoints the typed surface does not
// cover.
func (c *httpClient) Do(ctx context.Context, method, endpoint string, opts ...transport.RequestOption) (*transport.Response, error) {
	return c.transport.Request(ctx, method, endpoint, opts...)
}

func (c *httpClient) Close() error {
	return c.transport.Close()
}
