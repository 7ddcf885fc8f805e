// Package xmrbazaar scrapes XMRBazaar-style marketplace pages through a
// headless browser. The markup is site-specific; selectors carry fallbacks
// because listing pages are not uniform across categories.
package xmrbazaar

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	defaultMarketplace = "xmrbazaar.com"
	defaultTimeout     = 30 * time.Second
	defaultMaxResults  = 10
	defaultUserAgent   = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Pause after navigation so client-rendered listings settle.
	settleDelay = 2 * time.Second
)

// NewClient builds a marketplace client with its browser allocator options
// resolved up front.
func NewClient(cfg Config) (*Client, error) {
	marketplace := cfg.Marketplace
	if marketplace == "" {
		marketplace = defaultMarketplace
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)

	if bin := resolveChromeBinary(cfg.ChromeBin); bin != "" {
		opts = append(opts, chromedp.ExecPath(bin))
	}

	return &Client{
		marketplace: marketplace,
		timeout:     timeout,
		allocOpts:   opts,
	}, nil
}

// Marketplace returns the default host this client searches
func (c *Client) Marketplace() string {
	return c.marketplace
}

// Search loads the marketplace search page and extracts listing cards
func (c *Client) Search(ctx context.Context, query, marketplace string, maxResults int) ([]Listing, error) {
	if c == nil {
		return nil, fmt.Errorf("xmrbazaar: client is nil")
	}
	if query == "" {
		return nil, fmt.Errorf("xmrbazaar: query is required")
	}
	if marketplace == "" {
		marketplace = c.marketplace
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	searchURL := buildSearchURL(marketplace, query)

	var cards []searchCard
	if err := c.render(ctx, searchURL, chromedp.Evaluate(searchScript(maxResults), &cards)); err != nil {
		return nil, fmt.Errorf("xmrbazaar: search %q on %s: %w", query, marketplace, err)
	}

	listings := make([]Listing, 0, len(cards))
	for _, card := range cards {
		title := strings.TrimSpace(card.Title)
		href := strings.TrimSpace(card.URL)
		if title == "" || href == "" {
			continue
		}

		price := strings.TrimSpace(card.Price)
		if price == "" {
			price = "N/A"
		}

		listings = append(listings, Listing{
			Title:       title,
			Price:       price,
			URL:         absoluteURL(marketplace, href),
			Marketplace: marketplace,
			Thumbnail:   card.Thumbnail,
		})
	}

	return listings, nil
}

// ListingDetails loads a listing page and extracts the full product record
func (c *Client) ListingDetails(ctx context.Context, pageURL string) (ListingDetails, error) {
	details := ListingDetails{URL: pageURL, Specs: map[string]string{}}

	if c == nil {
		return details, fmt.Errorf("xmrbazaar: client is nil")
	}
	if pageURL == "" {
		return details, fmt.Errorf("xmrbazaar: listing url is required")
	}

	var page listingPage
	if err := c.render(ctx, pageURL, chromedp.Evaluate(listingScript, &page)); err != nil {
		return details, fmt.Errorf("xmrbazaar: listing details %s: %w", pageURL, err)
	}

	details.Title = strings.TrimSpace(page.Title)
	details.Price = strings.TrimSpace(page.Price)
	details.Description = strings.TrimSpace(page.Description)
	details.Condition = strings.TrimSpace(page.Condition)
	details.Shipping = strings.TrimSpace(page.Shipping)
	details.Vendor = strings.TrimSpace(page.Vendor)
	details.Images = page.Images

	if category := strings.TrimSpace(page.Category); category != "" {
		details.Specs["Category"] = category
	}

	if page.VendorHref != "" {
		details.VendorURL = absoluteURL(hostOf(pageURL, c.marketplace), page.VendorHref)
	}

	return details, nil
}

// VendorProfile loads a seller profile page and extracts reputation fields
func (c *Client) VendorProfile(ctx context.Context, vendorURL string) (VendorProfile, error) {
	profile := VendorProfile{URL: vendorURL}

	if c == nil {
		return profile, fmt.Errorf("xmrbazaar: client is nil")
	}
	if vendorURL == "" {
		return profile, fmt.Errorf("xmrbazaar: vendor url is required")
	}

	var page vendorPage
	if err := c.render(ctx, vendorURL, chromedp.Evaluate(vendorScript, &page)); err != nil {
		return profile, fmt.Errorf("xmrbazaar: vendor profile %s: %w", vendorURL, err)
	}

	profile.Username = strings.TrimSpace(page.Username)
	profile.Rating = strings.TrimSpace(page.Rating)
	profile.TotalTrades = strings.TrimSpace(page.TotalTrades)
	profile.MemberSince = strings.TrimSpace(page.MemberSince)
	profile.Reviews = page.Reviews
	profile.TrustLevel = trustLevel(profile.TotalTrades)

	return profile, nil
}

// render runs a fresh browser tab against pageURL and applies the extraction
// action once the page has settled.
func (c *Client) render(ctx context.Context, pageURL string, extract chromedp.Action) error {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, c.allocOpts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, c.timeout)
	defer cancelTimeout()

	return chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		chromedp.Sleep(settleDelay),
		extract,
	)
}

// buildSearchURL maps a marketplace host to its search URL shape
func buildSearchURL(marketplace, query string) string {
	q := url.QueryEscape(query)

	switch marketplace {
	case "xmrbazaar.com":
		return fmt.Sprintf("https://%s/search/?q=%s", marketplace, q)
	case "xmr.bazaar":
		return fmt.Sprintf("https://%s/?q=%s&sort=price_asc", marketplace, q)
	default:
		return fmt.Sprintf("https://%s/search?q=%s", marketplace, q)
	}
}

// absoluteURL resolves site-relative hrefs against the marketplace host
func absoluteURL(marketplace, href string) string {
	if strings.HasPrefix(href, "/") {
		return "https://" + marketplace + href
	}
	return href
}

// hostOf extracts the host from a page URL, falling back when unparseable
func hostOf(pageURL, fallback string) string {
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		return u.Host
	}
	return fallback
}

var tradesRe = regexp.MustCompile(`\d+`)

// trustLevel buckets a vendor by completed trade count
func trustLevel(totalTrades string) string {
	m := tradesRe.FindString(totalTrades)
	if m == "" {
		return ""
	}

	trades, err := strconv.Atoi(m)
	if err != nil {
		return ""
	}

	switch {
	case trades > 100:
		return TrustHigh
	case trades > 20:
		return TrustMedium
	default:
		return TrustLow
	}
}

// resolveChromeBinary prefers an explicit binary, then PATH, then well-known
// install locations.
func resolveChromeBinary(explicit string) string {
	if explicit != "" {
		return explicit
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
