package client

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultBaseURL is the partner API root used when no other base URL
// is configured.
const DefaultBaseURL = "https://partner.archive-it.org/api/"

type Option func(*options)

type options struct {
	baseURL  string
	username string
	password string

	timeout  time.Duration
	retryMax time.Duration

	httpClient *http.Client

	log *log.Entry
}

func newOptions() *options {
	return &options{
		baseURL: DefaultBaseURL,
	}
}

// WithBasicAuth sets the partner account credentials.
func WithBasicAuth(username, password string) Option {
	return func(o *options) {
		o.username = username
		o.password = password
	}
}

// WithBaseURL points the client at another API root, a staging
// service for example.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithRetry turns on transport retry for connection failures, backing
// off for at most maxElapsed per request.
func WithRetry(maxElapsed time.Duration) Option {
	return func(o *options) {
		o.retryMax = maxElapsed
	}
}

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
