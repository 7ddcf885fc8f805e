package domain

// TrustLevel is a coarse vendor reputation bucket derived from trade count
type TrustLevel string

const (
	TrustHigh   TrustLevel = "HIGH"
	TrustMedium TrustLevel = "MEDIUM"
	TrustLow    TrustLevel = "LOW"
)

// Listing is a single marketplace search hit
type Listing struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	URL         string `json:"url"`
	Marketplace string `json:"marketplace"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// SearchResult wraps search output
type SearchResult struct {
	Query       string    `json:"query"`
	Marketplace string    `json:"marketplace"`
	Count       int       `json:"count"`
	Results     []Listing `json:"results"`
}

// ListingDetails is the full record extracted from a listing page.
// Every field except URL is best-effort: selectors that match nothing
// leave the field empty.
type ListingDetails struct {
	URL         string            `json:"url"`
	Title       string            `json:"title,omitempty"`
	Price       string            `json:"price,omitempty"`
	Description string            `json:"description,omitempty"`
	Specs       map[string]string `json:"specs,omitempty"`
	Condition   string            `json:"condition,omitempty"`
	Shipping    string            `json:"shipping,omitempty"`
	Vendor      string            `json:"vendor,omitempty"`
	VendorURL   string            `json:"vendor_url,omitempty"`
	Images      []string          `json:"images,omitempty"`
}

// VendorProfile is the reputation record extracted from a seller page
type VendorProfile struct {
	URL         string     `json:"url"`
	Username    string     `json:"username,omitempty"`
	Rating      string     `json:"rating,omitempty"`
	TotalTrades string     `json:"total_trades,omitempty"`
	MemberSince string     `json:"member_since,omitempty"`
	Reviews     []string   `json:"reviews,omitempty"`
	TrustLevel  TrustLevel `json:"trust_level,omitempty"`
}
