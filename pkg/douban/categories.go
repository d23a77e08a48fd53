package douban

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Adda-Baaj/douban-client/pkg/httpclient"
)

// Client fetches category listings from the local API.
type Client struct {
	baseURL string
	http    httpclient.Client
	log     Logger
}

// NewClient returns a Client that calls baseURL + CategoriesPath through http.
func NewClient(baseURL string, http httpclient.Client, log Logger) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("douban base url is empty")
	}
	if http == nil {
		return nil, errors.New("douban http client is nil")
	}
	return &Client{baseURL: baseURL, http: http, log: ensureLogger(log)}, nil
}

// Categories issues one GET for p. A non-2xx status yields *RequestError;
// transport and JSON errors are returned unchanged.
func (c *Client) Categories(ctx context.Context, p CategoryParams) (Result, error) {
	url := CategoriesURL(c.baseURL, p)
	c.log.DebugObj("douban categories request", "douban_request", map[string]any{
		"url": url,
	})

	resp, err := c.http.Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	if !httpclient.IsSuccess(resp.StatusCode()) {
		c.log.WarnObj("douban categories request failed", "douban_error", map[string]any{
			"url":    url,
			"status": resp.StatusCode(),
		})
		return nil, &RequestError{Message: categoriesFailedMessage}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, err
	}
	return Result(raw), nil
}
