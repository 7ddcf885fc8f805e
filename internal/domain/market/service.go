package market

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/nexusai/nexus-mcp/internal/domain"
	"github.com/nexusai/nexus-mcp/pkg/logging"
)

const (
	defaultMarketplace = "xmrbazaar.com"
	defaultMaxResults  = 10
)

// Service exposes the three remote research operations behind the cache
type Service interface {
	Search(ctx context.Context, query, marketplace string, maxResults int) (domain.SearchResult, error)
	ItemDetails(ctx context.Context, url string) (domain.ListingDetails, error)
	VendorRating(ctx context.Context, vendorURL string) (domain.VendorProfile, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	provider    Provider
	cache       Cache
	logger      *logging.Logger
	marketplace string
}

// WithProvider sets the marketplace provider
func WithProvider(p Provider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithCache sets the blob cache
func WithCache(cache Cache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDefaultMarketplace sets the host used when a call passes none
func WithDefaultMarketplace(host string) Option {
	return func(c *config) {
		c.marketplace = host
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		marketplace: defaultMarketplace,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.provider == nil {
		return nil, fmt.Errorf("market.Service: provider is required")
	}
	if cfg.cache == nil {
		return nil, fmt.Errorf("market.Service: cache is required")
	}

	return &service{
		provider:    cfg.provider,
		cache:       cfg.cache,
		logger:      cfg.logger,
		marketplace: cfg.marketplace,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(provider Provider, cache Cache, logger *logging.Logger, marketplace string) (Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("market.Service: provider is required")
	}
	if cache == nil {
		return nil, fmt.Errorf("market.Service: cache is required")
	}
	if marketplace == "" {
		marketplace = defaultMarketplace
	}

	return &service{
		provider:    provider,
		cache:       cache,
		logger:      logger,
		marketplace: marketplace,
	}, nil
}

type service struct {
	provider    Provider
	cache       Cache
	logger      *logging.Logger
	marketplace string

	// collapses concurrent fetches of the same cache key into one browser
	// round trip
	group singleflight.Group
}

// Search returns listings for a keyword, serving from cache when fresh
func (s *service) Search(ctx context.Context, query, marketplace string, maxResults int) (domain.SearchResult, error) {
	if query == "" {
		return domain.SearchResult{}, fmt.Errorf("query is required")
	}
	if marketplace == "" {
		marketplace = s.marketplace
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	key := fmt.Sprintf("search_%s_%s", marketplace, query)

	var cached domain.SearchResult
	if hit, _ := s.cache.Get(key, &cached); hit {
		s.debug("search served from cache", "query", query, "marketplace", marketplace)
		return cached, nil
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		fetchID := uuid.NewString()
		s.info("marketplace search", "fetch_id", fetchID, "query", query, "marketplace", marketplace, "max_results", maxResults)

		listings, err := s.provider.Search(ctx, query, marketplace, maxResults)
		if err != nil {
			return domain.SearchResult{}, err
		}

		out := domain.SearchResult{
			Query:       query,
			Marketplace: marketplace,
			Count:       len(listings),
			Results:     listings,
		}

		s.store(key, out, fetchID)
		return out, nil
	})
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("search %q: %w", query, err)
	}

	return result.(domain.SearchResult), nil
}

// ItemDetails returns the full record for one listing page
func (s *service) ItemDetails(ctx context.Context, url string) (domain.ListingDetails, error) {
	if url == "" {
		return domain.ListingDetails{}, fmt.Errorf("url is required")
	}

	key := "details_" + url

	var cached domain.ListingDetails
	if hit, _ := s.cache.Get(key, &cached); hit {
		s.debug("details served from cache", "url", url)
		return cached, nil
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		fetchID := uuid.NewString()
		s.info("listing details fetch", "fetch_id", fetchID, "url", url)

		details, err := s.provider.ListingDetails(ctx, url)
		if err != nil {
			return domain.ListingDetails{}, err
		}

		s.store(key, details, fetchID)
		return details, nil
	})
	if err != nil {
		return domain.ListingDetails{}, fmt.Errorf("item details %s: %w", url, err)
	}

	return result.(domain.ListingDetails), nil
}

// VendorRating returns the reputation record for one seller page
func (s *service) VendorRating(ctx context.Context, vendorURL string) (domain.VendorProfile, error) {
	if vendorURL == "" {
		return domain.VendorProfile{}, fmt.Errorf("vendor url is required")
	}

	key := "vendor_" + vendorURL

	var cached domain.VendorProfile
	if hit, _ := s.cache.Get(key, &cached); hit {
		s.debug("vendor profile served from cache", "url", vendorURL)
		return cached, nil
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		fetchID := uuid.NewString()
		s.info("vendor profile fetch", "fetch_id", fetchID, "url", vendorURL)

		profile, err := s.provider.VendorProfile(ctx, vendorURL)
		if err != nil {
			return domain.VendorProfile{}, err
		}

		s.store(key, profile, fetchID)
		return profile, nil
	})
	if err != nil {
		return domain.VendorProfile{}, fmt.Errorf("vendor rating %s: %w", vendorURL, err)
	}

	return result.(domain.VendorProfile), nil
}

// store writes through to the cache; failures degrade to uncached operation
func (s *service) store(key string, v any, fetchID string) {
	if err := s.cache.Set(key, v); err != nil {
		if s.logger != nil {
			s.logger.Warn("cache write failed", "fetch_id", fetchID, "key", key, "err", err)
		}
	}
}

func (s *service) debug(msg string, keyvals ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, keyvals...)
	}
}

func (s *service) info(msg string, keyvals ...any) {
	if s.logger != nil {
		s.logger.Info(msg, keyvals...)
	}
}
