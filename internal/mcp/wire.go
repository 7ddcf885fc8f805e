//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/nexusai/nexus-mcp/internal/config"
	"github.com/nexusai/nexus-mcp/internal/domain/market"
	xmrProvider "github.com/nexusai/nexus-mcp/internal/domain/market/providers/xmrbazaar"
	"github.com/nexusai/nexus-mcp/internal/storage/filecache"
	"github.com/nexusai/nexus-mcp/pkg/logging"
	"github.com/nexusai/nexus-mcp/pkg/xmrbazaar"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(cfg config.Config, logger *logging.Logger) (Resources, error) {
	wire.Build(
		// Infrastructure - headless browser client
		provideClientConfig,
		xmrbazaar.NewClient,

		// Infrastructure - file cache
		provideCacheConfig,
		filecache.New,
		wire.Bind(new(market.Cache), new(*filecache.Cache)),

		// Providers
		provideMarketProvider,
		wire.Bind(new(market.Provider), new(*xmrProvider.Provider)),

		// Services
		provideMarketplaceHost,
		market.NewServiceWithDeps,

		newResources,
	)

	return Resources{}, nil
}

// provideClientConfig extracts browser client config from main config
func provideClientConfig(cfg config.Config) xmrbazaar.Config {
	return xmrbazaar.Config{
		Marketplace: cfg.Marketplace,
		Headless:    cfg.Browser.Headless,
		Timeout:     cfg.Browser.Timeout,
		ChromeBin:   cfg.Browser.ChromeBin,
	}
}

// provideCacheConfig extracts cache config from main config
func provideCacheConfig(cfg config.Config) filecache.Config {
	return filecache.Config{
		Dir: cfg.Cache.Dir,
		TTL: cfg.Cache.TTL,
	}
}

// provideMarketProvider creates a marketplace provider from the browser client
func provideMarketProvider(client *xmrbazaar.Client) (*xmrProvider.Provider, error) {
	return xmrProvider.NewProvider(client)
}

// provideMarketplaceHost extracts the default marketplace host
func provideMarketplaceHost(cfg config.Config) string {
	return cfg.Marketplace
}

// newResources creates Resources struct
func newResources(marketSvc market.Service) Resources {
	return Resources{
		MarketService: marketSvc,
	}
}
