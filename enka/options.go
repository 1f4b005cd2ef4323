package enka

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Doer executes a single HTTP request. *http.Client satisfies it; it must
// be safe for concurrent use when calls share it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures the fetch functions and Client.
type Option func(*options)

// DefaultConcurrency bounds the requests Client.GetGenshinBuilds runs at once
const DefaultConcurrency = 4

// options is the transport and header configuration shared by every call.
// It is never modified after construction.
type options struct {
	httpClient Doer
	userAgent  string
	baseURL    string
	logger     zerolog.Logger

	concurrency int
}

func newOptions(opts []Option) options {
	o := options{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		logger:     zerolog.Nop(),

		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithHTTPClient sets the transport used to execute requests.
func WithHTTPClient(client Doer) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithUserAgent sets a custom User-Agent; empty keeps DefaultUserAgent.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithLogger sets the logger used for request and decode diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		if baseURL != "" {
			o.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithConcurrency bounds the parallel requests of Client.GetGenshinBuilds.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
