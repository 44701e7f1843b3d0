// Package transport speaks HTTP to the archiving service: base URL
// joining, basic auth, query and body encoding, status mapping and
// optional retry on connection errors.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
)

// json keeps numbers as json.Number so callers can tell integers from
// floats after decoding.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

type Transport struct {
	base     string
	username string
	password string

	http     *http.Client
	retryMax time.Duration

	log *log.Entry

	mu     sync.Mutex
	closed bool
}

func New(baseURL string, opts ...Option) (*Transport, error) {
	if err := validation.Validate(baseURL, validation.Required, is.URL); err != nil {
		return nil, fmt.Errorf("base url %q: %w", baseURL, err)
	}

	opt := &options{}

	for _, o := range opts {
		o(opt)
	}

	httpClient := opt.httpClient
	if httpClient == nil {
		timeout := opt.timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}

		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	entry := opt.log
	if entry == nil {
		entry = log.WithField("component", "transport")
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Transport{
		base:     baseURL,
		username: opt.username,
		password: opt.password,
		http:     httpClient,
		retryMax: opt.retryMax,
		log:      entry,
	}, nil
}

// Request performs one HTTP exchange against the service. Endpoints are
// joined onto the base URL. Responses outside the 2xx range come back as
// a StatusError.
func (t *Transport) Request(ctx context.Context, method, endpoint string, opts ...RequestOption) (*Response, error) {
	if t.isClosed() {
		return nil, ErrClosed
	}

	req := &request{}

	for _, o := range opts {
		if err := o(req); err != nil {
			return nil, err
		}
	}

	if t.retryMax <= 0 {
		return t.attempt(ctx, method, endpoint, req)
	}

	var resp *Response

	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = time.Second * 2
	bo.MaxElapsedTime = t.retryMax

	err := backoff.Retry(func() error {
		r, err := t.attempt(ctx, method, endpoint, req)
		if err != nil {
			if _, ok := AsStatusError(err); ok {
				return backoff.Permanent(err)
			}

			return err
		}

		resp = r

		return nil
	}, backoff.WithContext(bo, ctx))
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (t *Transport) attempt(ctx context.Context, method, endpoint string, r *request) (*Response, error) {
	target := t.base + strings.TrimPrefix(endpoint, "/")
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	if t.username != "" || t.password != "" {
		req.SetBasicAuth(t.username, t.password)
	}

	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	t.log.WithFields(log.Fields{
		"method":     method,
		"endpoint":   endpoint,
		"request_id": requestID,
	}).Debug("request")

	resp, err := t.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return &Response{
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       data,
		}, nil
	}

	return nil, &StatusError{
		StatusCode: resp.StatusCode,
		Method:     method,
		Endpoint:   endpoint,
		Body:       data,
	}
}

// Close releases idle connections. Requests made afterwards fail with
// ErrClosed. Closing twice is a no-op.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	t.closed = true
	t.http.CloseIdleConnections()

	return nil
}

func (t *Transport) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.closed
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode returns the body as generic JSON. Numbers stay json.Number.
func (r *Response) Decode() (any, error) {
	var v any

	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil, err
	}

	return v, nil
}

// JSON decodes the body into out.
func (r *Response) JSON(out any) error {
	return json.Unmarshal(r.Body, out)
}
