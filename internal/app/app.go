package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Adda-Baaj/douban-client/internal/config"
	"github.com/Adda-Baaj/douban-client/internal/logger"
	"github.com/Adda-Baaj/douban-client/pkg/douban"
	"github.com/Adda-Baaj/douban-client/pkg/httpclient"
	"github.com/Adda-Baaj/douban-client/pkg/identity"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentPages bounds FetchPages fan-out.
const maxConcurrentPages = 4

// App owns the long-lived pieces an embedding program needs: the category
// client, the image client and the identity provider they share.
type App struct {
	cfg        *config.Config
	log        logger.Logger
	identity   *identity.Provider
	categories *douban.Client
	images     *douban.ImageClient
}

// Option customizes New.
type Option func(*options)

type options struct {
	transport httpclient.Client
	identity  *identity.Provider
}

// WithTransport replaces the resty transport, mainly for tests.
func WithTransport(c httpclient.Client) Option {
	return func(o *options) { o.transport = c }
}

// WithIdentity replaces the identity provider built from config.
func WithIdentity(p *identity.Provider) Option {
	return func(o *options) { o.identity = p }
}

// New wires the runtime from cfg.
func New(cfg *config.Config, log logger.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.transport == nil {
		o.transport = httpclient.NewRestyClient(cfg.HTTPTimeout)
	}
	if o.identity == nil {
		o.identity = identity.NewProvider(identity.WithTTL(cfg.UserAgentTTL))
	}

	categories, err := douban.NewClient(cfg.APIBaseURL, o.transport, log)
	if err != nil {
		return nil, fmt.Errorf("init category client: %w", err)
	}

	log.InfoObj("douban client initialized", "client_config", map[string]any{
		"api_base_url":           cfg.APIBaseURL,
		"http_timeout_seconds":   int(cfg.HTTPTimeout.Seconds()),
		"user_agent_ttl_seconds": int(cfg.UserAgentTTL.Seconds()),
	})

	return &App{
		cfg:        cfg,
		log:        log,
		identity:   o.identity,
		categories: categories,
		images:     douban.NewImageClient(o.transport, o.identity, log),
	}, nil
}

// Categories fetches a single page.
func (a *App) Categories(ctx context.Context, p douban.CategoryParams) (douban.Result, error) {
	return a.categories.Categories(ctx, p)
}

// FetchPages fetches pages consecutive pages starting at p.PageStart, each of
// p.PageLimit items, and returns them in page order. Each page is one request.
func (a *App) FetchPages(ctx context.Context, p douban.CategoryParams, pages int) ([]douban.Result, error) {
	if pages <= 0 {
		return nil, fmt.Errorf("pages must be positive, got %d", pages)
	}
	if p.PageLimit == 0 {
		p.PageLimit = douban.DefaultPageLimit
	}

	start := time.Now()
	results := make([]douban.Result, pages)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPages)
	for i := 0; i < pages; i++ {
		page := p
		page.PageStart = p.PageStart + i*p.PageLimit
		idx := i
		g.Go(func() error {
			res, err := a.categories.Categories(gctx, page)
			if err != nil {
				return fmt.Errorf("page start=%d: %w", page.PageStart, err)
			}
			results[idx] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.log.ErrorObj("category fetch failed", "error", err)
		return nil, err
	}

	a.log.InfoObj("category fetch completed", "fetch_meta", map[string]any{
		"kind":       string(p.Kind),
		"category":   p.Category,
		"type":       p.Type,
		"pages":      pages,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return results, nil
}

// FetchImage downloads url with browser image headers and the cached user agent.
func (a *App) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return a.images.Fetch(ctx, url)
}

// UserAgent returns the cached synthetic user agent.
func (a *App) UserAgent() string {
	return a.identity.RealUserAgent()
}

// UserAgentExpiry reports when the current user agent is replaced.
func (a *App) UserAgentExpiry() (time.Time, bool) {
	return a.identity.Expiry()
}

// Headers returns the API header table, or the image table when image is true.
func (a *App) Headers(image bool) map[string]string {
	if image {
		return identity.DoubanImageHeaders()
	}
	return identity.DoubanHeaders()
}
