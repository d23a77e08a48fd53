package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to Client.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a RestyClient. A non-positive timeout leaves resty's
// default (none) in place.
func NewRestyClient(timeout time.Duration) *RestyClient {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &RestyClient{client: c}
}

// Get performs a single GET with ctx and the given headers and returns the
// response without inspecting its status. resty retries stay disabled.
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter exposes a resty.Response as a Response.
type restyResponseAdapter struct {
	resp *resty.Response
}

// Body returns the raw response bytes.
func (r *restyResponseAdapter) Body() []byte { return r.resp.Body() }

// StatusCode returns the HTTP status code.
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
