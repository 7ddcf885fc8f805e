package xmrbazaar

import (
	"context"
	"fmt"

	"github.com/nexusai/nexus-mcp/internal/domain"
	marketdomain "github.com/nexusai/nexus-mcp/internal/domain/market"
	"github.com/nexusai/nexus-mcp/pkg/xmrbazaar"
)

// marketClient describes the subset of the scraping client used by the provider.
type marketClient interface {
	Search(ctx context.Context, query, marketplace string, maxResults int) ([]xmrbazaar.Listing, error)
	ListingDetails(ctx context.Context, url string) (xmrbazaar.ListingDetails, error)
	VendorProfile(ctx context.Context, url string) (xmrbazaar.VendorProfile, error)
}

// Provider implements market.Provider using the XMRBazaar scraping client
type Provider struct {
	client marketClient
}

// NewProvider builds an XMRBazaar provider
func NewProvider(client marketClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("xmrbazaar provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "xmrbazaar"
}

// Search queries the marketplace and returns normalized listings
func (p *Provider) Search(ctx context.Context, query, marketplace string, maxResults int) ([]domain.Listing, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("xmrbazaar provider: client is nil")
	}

	hits, err := p.client.Search(ctx, query, marketplace, maxResults)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Listing, 0, len(hits))
	for _, h := range hits {
		out = append(out, domain.Listing{
			Title:       h.Title,
			Price:       h.Price,
			URL:         h.URL,
			Marketplace: h.Marketplace,
			Thumbnail:   h.Thumbnail,
		})
	}

	return out, nil
}

// ListingDetails fetches and normalizes one listing page
func (p *Provider) ListingDetails(ctx context.Context, url string) (domain.ListingDetails, error) {
	if p == nil || p.client == nil {
		return domain.ListingDetails{}, fmt.Errorf("xmrbazaar provider: client is nil")
	}

	d, err := p.client.ListingDetails(ctx, url)
	if err != nil {
		return domain.ListingDetails{}, err
	}

	return domain.ListingDetails{
		URL:         d.URL,
		Title:       d.Title,
		Price:       d.Price,
		Description: d.Description,
		Specs:       d.Specs,
		Condition:   d.Condition,
		Shipping:    d.Shipping,
		Vendor:      d.Vendor,
		VendorURL:   d.VendorURL,
		Images:      d.Images,
	}, nil
}

// VendorProfile fetches and normalizes one seller profile page
func (p *Provider) VendorProfile(ctx context.Context, url string) (domain.VendorProfile, error) {
	if p == nil || p.client == nil {
		return domain.VendorProfile{}, fmt.Errorf("xmrbazaar provider: client is nil")
	}

	v, err := p.client.VendorProfile(ctx, url)
	if err != nil {
		return domain.VendorProfile{}, err
	}

	return domain.VendorProfile{
		URL:         v.URL,
		Username:    v.Username,
		Rating:      v.Rating,
		TotalTrades: v.TotalTrades,
		MemberSince: v.MemberSince,
		Reviews:     v.Reviews,
		TrustLevel:  domain.TrustLevel(v.TrustLevel),
	}, nil
}

var _ marketdomain.Provider = (*Provider)(nil)
