package httpclient

import (
	"context"
	"net/http"
)

const userAgentHeader = "User-Agent"

// HeaderClient decorates a Client with a base header table and a User-Agent.
// Precedence, lowest first: base table, User-Agent from the source, per-call headers.
type HeaderClient struct {
	next  Client
	base  func() map[string]string
	agent UserAgentSource
}

// NewHeaderClient wraps next. base may be nil (no table) and so may src (no User-Agent).
func NewHeaderClient(next Client, base func() map[string]string, src UserAgentSource) *HeaderClient {
	return &HeaderClient{next: next, base: base, agent: src}
}

// Get merges the headers and forwards to the wrapped client.
func (h *HeaderClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	return h.next.Get(ctx, url, h.Headers(headers))
}

// Headers returns the merged header set that Get would send. Keys are
// canonicalized so differently cased names override each other.
func (h *HeaderClient) Headers(extra map[string]string) map[string]string {
	var base map[string]string
	if h.base != nil {
		base = h.base()
	}

	out := make(map[string]string, len(base)+len(extra)+1)
	for k, v := range base {
		out[http.CanonicalHeaderKey(k)] = v
	}
	if h.agent != nil {
		if ua := h.agent.RealUserAgent(); ua != "" {
			out[userAgentHeader] = ua
		}
	}
	for k, v := range extra {
		out[http.CanonicalHeaderKey(k)] = v
	}
	return out
}
