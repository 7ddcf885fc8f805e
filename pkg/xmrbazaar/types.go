package xmrbazaar

import (
	"time"

	"github.com/chromedp/chromedp"
)

// Config defines marketplace client settings
type Config struct {
	Marketplace string // default host used when a call passes none
	Headless    bool
	Timeout     time.Duration // per-page navigation budget
	ChromeBin   string        // optional explicit browser binary
	UserAgent   string
}

// Client extracts marketplace data from rendered pages
type Client struct {
	marketplace string
	timeout     time.Duration
	allocOpts   []chromedp.ExecAllocatorOption
}

// Listing is a single search hit
type Listing struct {
	Title       string
	Price       string
	URL         string
	Marketplace string
	Thumbnail   string
}

// ListingDetails is the full record from a listing page
type ListingDetails struct {
	URL         string
	Title       string
	Price       string
	Description string
	Specs       map[string]string
	Condition   string
	Shipping    string
	Vendor      string
	VendorURL   string
	Images      []string
}

// VendorProfile is the reputation record from a seller page
type VendorProfile struct {
	URL         string
	Username    string
	Rating      string
	TotalTrades string
	MemberSince string
	Reviews     []string
	TrustLevel  string
}

// Vendor trust buckets derived from completed trade count.
const (
	TrustHigh   = "HIGH"
	TrustMedium = "MEDIUM"
	TrustLow    = "LOW"
)

// Raw shapes produced by the in-page extraction scripts.

type searchCard struct {
	Title     string `json:"title"`
	Price     string `json:"price"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

type listingPage struct {
	Title       string   `json:"title"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	Shipping    string   `json:"shipping"`
	Vendor      string   `json:"vendor"`
	VendorHref  string   `json:"vendorHref"`
	Images      []string `json:"images"`
}

type vendorPage struct {
	Username    string   `json:"username"`
	Rating      string   `json:"rating"`
	TotalTrades string   `json:"totalTrades"`
	MemberSince string   `json:"memberSince"`
	Reviews     []string `json:"reviews"`
}
