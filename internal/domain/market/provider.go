package market

import (
	"context"

	"github.com/nexusai/nexus-mcp/internal/domain"
)

// Provider represents a marketplace data source backed by a rendered-page
// scraper or an API.
type Provider interface {
	// e.g. "xmrbazaar"
	Name() string

	// Search returns normalized listings for a query
	Search(ctx context.Context, query, marketplace string, maxResults int) ([]domain.Listing, error)

	// ListingDetails returns the full record for one listing page
	ListingDetails(ctx context.Context, url string) (domain.ListingDetails, error)

	// VendorProfile returns the reputation record for one seller page
	VendorProfile(ctx context.Context, url string) (domain.VendorProfile, error)
}

// Cache persists opaque JSON blobs under string keys with best-effort
// freshness semantics.
type Cache interface {
	Get(key string, v any) (bool, error)
	Set(key string, v any) error
}
