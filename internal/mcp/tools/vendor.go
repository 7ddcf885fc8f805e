package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nexusai/nexus-mcp/pkg/logging"
)

// VendorRatingParams defines the arguments for the get_vendor_rating tool
type VendorRatingParams struct {
	VendorURL string `json:"vendor_url" jsonschema:"URL of the seller's profile page"`
}

const vendorRatingDescription = "Verify seller reputation before recommending a " +
	"listing. Pass the vendor_url from get_item_details; review rating, completed " +
	"trade count, and the derived trust level."

type vendorRatingTool struct {
	service MarketService
	logger  *logging.Logger
}

// WithVendorRating registers the get_vendor_rating tool
func WithVendorRating(service MarketService, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := vendorRatingTool{service: service, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "get_vendor_rating",
			Description: vendorRatingDescription,
		}, handler.handle)
	}
}

func (t vendorRatingTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *VendorRatingParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.VendorURL == "" {
		return nil, nil, fmt.Errorf("vendor_url is required")
	}

	if t.logger != nil {
		t.logger.Info("get_vendor_rating request", "vendor_url", params.VendorURL)
	}

	if t.service == nil {
		return nil, nil, fmt.Errorf("market service not configured")
	}

	profile, err := t.service.VendorRating(ctx, params.VendorURL)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("get_vendor_rating failed", "vendor_url", params.VendorURL, "err", err)
		}
		return nil, nil, fmt.Errorf("vendor rating failed: %w", err)
	}

	msg := fmt.Sprintf("[get_vendor_rating] %s", profile.Username)
	if profile.Rating != "" {
		msg += fmt.Sprintf("\nRating: %s", profile.Rating)
	}
	if profile.TotalTrades != "" {
		msg += fmt.Sprintf("\nTrades: %s", profile.TotalTrades)
	}
	if profile.TrustLevel != "" {
		msg += fmt.Sprintf("\nTrust level: %s", profile.TrustLevel)
	}

	return textResult(msg), profile, nil
}
