package identity

import (
	"time"

	"github.com/Adda-Baaj/douban-client/pkg/expiring"
)

// DefaultTTL is how long a generated user agent is reused.
const DefaultTTL = time.Hour

// Provider hands out a synthetic browser user agent that stays stable for its TTL,
// so a run of requests presents one consistent fingerprint.
type Provider struct {
	cache     *expiring.Value[string]
	generator Generator
}

// ProviderOption customizes a Provider.
type ProviderOption func(*providerConfig)

type providerConfig struct {
	ttl       time.Duration
	clock     expiring.Clock
	generator Generator
}

// WithTTL overrides DefaultTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) ProviderOption {
	return func(c *providerConfig) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock injects the clock used for expiry.
func WithClock(clock expiring.Clock) ProviderOption {
	return func(c *providerConfig) { c.clock = clock }
}

// WithGenerator replaces the Windows desktop generator.
func WithGenerator(g Generator) ProviderOption {
	return func(c *providerConfig) {
		if g != nil {
			c.generator = g
		}
	}
}

// NewProvider builds a Provider with an empty cache.
func NewProvider(opts ...ProviderOption) *Provider {
	cfg := providerConfig{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.generator == nil {
		cfg.generator = NewWindowsDesktopGenerator(nil)
	}

	var cacheOpts []expiring.Option
	if cfg.clock != nil {
		cacheOpts = append(cacheOpts, expiring.WithClock(cfg.clock))
	}

	return &Provider{
		cache:     expiring.New[string](cfg.ttl, cacheOpts...),
		generator: cfg.generator,
	}
}

// RealUserAgent returns the cached user agent, generating a new one when the
// previous one has expired or is empty.
func (p *Provider) RealUserAgent() string {
	return p.cache.GetValid(nonEmpty, p.generator.Generate)
}

func nonEmpty(ua string) bool { return ua != "" }

// Expiry reports when the current user agent will be replaced. ok is false
// before the first call to RealUserAgent.
func (p *Provider) Expiry() (expiry time.Time, ok bool) {
	_, expiry, ok = p.cache.Peek()
	return expiry, ok
}
