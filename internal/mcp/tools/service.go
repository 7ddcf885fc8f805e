package tools

import (
	"context"

	"github.com/nexusai/nexus-mcp/internal/domain"
)

// MarketService encapsulates the remote marketplace research operations
// behind the cache.
type MarketService interface {
	Search(ctx context.Context, query, marketplace string, maxResults int) (domain.SearchResult, error)
	ItemDetails(ctx context.Context, url string) (domain.ListingDetails, error)
	VendorRating(ctx context.Context, vendorURL string) (domain.VendorProfile, error)
}
