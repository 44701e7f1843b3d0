// Package client is the working implementation of the partner API
// surface: it authenticates on construction and carries out the seed
// operations over HTTP.
package client

import (
	"context"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	log "github.com/sirupsen/logrus"

	v1 "github.com/kenlhlui/go-archiveit/api/v1"
	"github.com/kenlhlui/go-archiveit/api/v1/objects"
	"github.com/kenlhlui/go-archiveit/pkg/schema"
	"github.com/kenlhlui/go-archiveit/pkg/transport"
)

// NewWithOpts builds a client and proves the credentials against the
// auth endpoint before handing it out. A client that cannot
// authenticate is never returned.
func NewWithOpts(ctx context.Context, opts ...Option) (v1.V1, error) {
	opt := newOptions()

	for _, o := range opts {
		o(opt)
	}

	if err := (validation.Errors{
		"username": validation.Validate(opt.username, validation.Required),
		"password": validation.Validate(opt.password, validation.Required),
	}).Filter(); err != nil {
		return nil, fmt.Errorf("%w: %v", v1.ErrNoCredentials, err)
	}

	trOpts := []transport.Option{
		transport.WithBasicAuth(opt.username, opt.password),
	}
	if opt.timeout > 0 {
		trOpts = append(trOpts, transport.WithTimeout(opt.timeout))
	}
	if opt.retryMax > 0 {
		trOpts = append(trOpts, transport.WithRetry(opt.retryMax))
	}
	if opt.httpClient != nil {
		trOpts = append(trOpts, transport.WithHTTPClient(opt.httpClient))
	}
	if opt.log != nil {
		trOpts = append(trOpts, transport.WithLogger(opt.log.WithField("component", "transport")))
	}

	tr, err := transport.New(opt.baseURL, trOpts...)
	if err != nil {
		return nil, err
	}

	entry := opt.log
	if entry == nil {
		entry = log.WithField("component", "archiveit")
	}

	c := &httpClient{
		transport: tr,
		log:       entry,
	}
	c.seed = &httpSeed{client: c}

	account, err := c.checkAuth(ctx)
	if err != nil {
		tr.Close()

		return nil, err
	}

	c.account = account

	return c, nil
}

func (c *httpClient) checkAuth(ctx context.Context) (*objects.Account, error) {
	resp, err := c.transport.Request(ctx, http.MethodGet, "auth")
	if err != nil {
		if serr, ok := transport.AsStatusError(err); ok {
			if serr.StatusCode == http.StatusUnauthorized || serr.StatusCode == http.StatusForbidden {
				return nil, &v1.InvalidAuthError{
					StatusCode: serr.StatusCode,
					Reason:     "service rejected the credentials",
				}
			}
		}

		return nil, err
	}

	body, err := resp.Decode()
	if err != nil {
		return nil, err
	}

	rec, err := schema.Validate(objects.AccountSchema, body, "auth")
	if err != nil {
		c.log.WithError(err).Debug("auth body did not validate")

		return nil, &v1.InvalidAuthError{Reason: "auth response carries no account id"}
	}

	return objects.AccountFromRecord(rec)
}
