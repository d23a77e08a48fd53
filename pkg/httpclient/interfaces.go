package httpclient

import "context"

// Response is the part of an HTTP response callers in this module read.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client issues GET requests. Fetchers depend on this instead of resty so tests
// can hand in stubs.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// UserAgentSource supplies the User-Agent sent with each request.
type UserAgentSource interface {
	RealUserAgent() string
}

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
