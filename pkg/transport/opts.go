package transport

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultTimeout = time.Second * 15

type options struct {
	username   string
	password   string
	timeout    time.Duration
	retryMax   time.Duration
	httpClient *http.Client
	log        *log.Entry
}

type Option func(*options)

// WithBasicAuth attaches the credentials to every request.
func WithBasicAuth(username, password string) Option {
	return func(o *options) {
		o.username = username
		o.password = password
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithRetry re-sends requests that failed before reaching the service,
// backing off exponentially for at most maxElapsed. Responses with an
// error status are never retried.
func WithRetry(maxElapsed time.Duration) Option {
	return func(o *options) {
		o.retryMax = maxElapsed
	}
}

// WithHTTPClient replaces the default client. The timeout option is
// ignored when a client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

func WithLogger(entry *log.Entry) Option {
	return func(o *options) {
		o.log = entry
	}
}
