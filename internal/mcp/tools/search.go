package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nexusai/nexus-mcp/pkg/logging"
)

// SearchMarketParams defines the arguments for the search_market tool
type SearchMarketParams struct {
	Query       string `json:"query" jsonschema:"Search keyword, e.g. thinkpad or graphics card"`
	Marketplace string `json:"marketplace,omitempty" jsonschema:"Marketplace host to search, defaults to xmrbazaar.com"`
	MaxResults  int    `json:"max_results,omitempty" jsonschema:"Maximum listings to return, defaults to 10"`
}

const searchMarketDescription = "Search the marketplace for product listings. " +
	"Use for initial research when the user names a product category; review the " +
	"returned titles and prices, then call get_item_details on promising listings."

type searchMarketTool struct {
	service MarketService
	logger  *logging.Logger
}

// WithSearchMarket registers the search_market tool
func WithSearchMarket(service MarketService, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := searchMarketTool{service: service, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_market",
			Description: searchMarketDescription,
		}, handler.handle)
	}
}

func (t searchMarketTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchMarketParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &SearchMarketParams{}
	}

	if t.logger != nil {
		t.logger.Info("search_market request",
			"query", params.Query,
			"marketplace", params.Marketplace,
			"max_results", params.MaxResults,
		)
	}

	if t.service == nil {
		return nil, nil, fmt.Errorf("market service not configured")
	}

	result, err := t.service.Search(ctx, params.Query, params.Marketplace, params.MaxResults)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("search_market failed", "query", params.Query, "err", err)
		}
		return nil, nil, fmt.Errorf("search failed: %w", err)
	}

	msg := fmt.Sprintf("[search_market] Found %d listing(s) for %q on %s", result.Count, result.Query, result.Marketplace)
	for _, l := range result.Results {
		msg += fmt.Sprintf("\n• %s (%s)", l.Title, l.Price)
	}

	return textResult(msg), result, nil
}
