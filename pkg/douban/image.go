package douban

import (
	"context"
	"errors"
	"strings"

	"github.com/Adda-Baaj/douban-client/pkg/httpclient"
	"github.com/Adda-Baaj/douban-client/pkg/identity"
)

// ImageClient downloads poster images presenting itself as a browser loading
// them cross-site from the explore page.
type ImageClient struct {
	http *httpclient.HeaderClient
	log  Logger
}

// NewImageClient wraps transport with the image header table and the user agent from agents.
func NewImageClient(transport httpclient.Client, agents httpclient.UserAgentSource, log Logger) *ImageClient {
	return &ImageClient{
		http: httpclient.NewHeaderClient(transport, identity.DoubanImageHeaders, agents),
		log:  ensureLogger(log),
	}
}

// Fetch returns the image bytes at url.
func (c *ImageClient) Fetch(ctx context.Context, url string) ([]byte, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("image url is empty")
	}

	resp, err := c.http.Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	if !httpclient.IsSuccess(resp.StatusCode()) {
		c.log.WarnObj("douban image request failed", "douban_error", map[string]any{
			"url":    url,
			"status": resp.StatusCode(),
		})
		return nil, &RequestError{Message: imageFailedMessage}
	}
	return resp.Body(), nil
}
