package mcp

import (
	"github.com/nexusai/nexus-mcp/internal/config"
	"github.com/nexusai/nexus-mcp/internal/domain/market"
	xmrProvider "github.com/nexusai/nexus-mcp/internal/domain/market/providers/xmrbazaar"
	"github.com/nexusai/nexus-mcp/internal/mcp/tools"
	"github.com/nexusai/nexus-mcp/internal/storage/filecache"
	"github.com/nexusai/nexus-mcp/pkg/logging"
	"github.com/nexusai/nexus-mcp/pkg/xmrbazaar"
)

// Resources holds the tool dependencies for the MCP server
type Resources struct {
	MarketService tools.MarketService
}

// DefaultResources wires the scraping client, cache, and market service
// from config.
func DefaultResources(cfg config.Config, logger *logging.Logger) (Resources, error) {
	client, err := xmrbazaar.NewClient(xmrbazaar.Config{
		Marketplace: cfg.Marketplace,
		Headless:    cfg.Browser.Headless,
		Timeout:     cfg.Browser.Timeout,
		ChromeBin:   cfg.Browser.ChromeBin,
	})
	if err != nil {
		return Resources{}, err
	}

	provider, err := xmrProvider.NewProvider(client)
	if err != nil {
		return Resources{}, err
	}

	cache, err := filecache.New(filecache.Config{
		Dir: cfg.Cache.Dir,
		TTL: cfg.Cache.TTL,
	})
	if err != nil {
		return Resources{}, err
	}

	svc, err := market.NewService(
		market.WithProvider(provider),
		market.WithCache(cache),
		market.WithLogger(logger),
		market.WithDefaultMarketplace(cfg.Marketplace),
	)
	if err != nil {
		return Resources{}, err
	}

	logger.Info("marketplace provider initialized",
		"provider", provider.Name(),
		"marketplace", cfg.Marketplace,
		"cache_dir", cfg.Cache.Dir,
		"cache_ttl", cfg.Cache.TTL,
	)

	return Resources{MarketService: svc}, nil
}
