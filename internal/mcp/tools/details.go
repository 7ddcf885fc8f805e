package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nexusai/nexus-mcp/pkg/logging"
)

// ItemDetailsParams defines the arguments for the get_item_details tool
type ItemDetailsParams struct {
	URL string `json:"url" jsonschema:"Full URL of the listing page"`
}

const itemDetailsDescription = "Get the full record for a specific listing: " +
	"description, condition, shipping, and seller. Pass a URL returned by " +
	"search_market, then use analyze_match to score the listing against user needs."

type itemDetailsTool struct {
	service MarketService
	logger  *logging.Logger
}

// WithItemDetails registers the get_item_details tool
func WithItemDetails(service MarketService, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := itemDetailsTool{service: service, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "get_item_details",
			Description: itemDetailsDescription,
		}, handler.handle)
	}
}

func (t itemDetailsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *ItemDetailsParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.URL == "" {
		return nil, nil, fmt.Errorf("url is required")
	}

	if t.logger != nil {
		t.logger.Info("get_item_details request", "url", params.URL)
	}

	if t.service == nil {
		return nil, nil, fmt.Errorf("market service not configured")
	}

	details, err := t.service.ItemDetails(ctx, params.URL)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("get_item_details failed", "url", params.URL, "err", err)
		}
		return nil, nil, fmt.Errorf("item details failed: %w", err)
	}

	msg := fmt.Sprintf("[get_item_details] %s (%s)", details.Title, details.Price)
	if details.Condition != "" {
		msg += fmt.Sprintf("\nCondition: %s", details.Condition)
	}
	if details.Vendor != "" {
		msg += fmt.Sprintf("\nSeller: %s", details.Vendor)
	}

	return textResult(msg), details, nil
}
