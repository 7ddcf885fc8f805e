// Package match scores marketplace listings against user requirements.
//
// The scorer is a pure function: no I/O, no shared state, and no failure
// mode. Missing or malformed inputs degrade to the neutral outcome of the
// affected dimension instead of returning an error, so a multi-tool research
// chain is never aborted by one absent upstream field.
package match

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nexusai/nexus-mcp/internal/domain"
)

// Point budget per dimension. Intermediate totals may leave [0,100];
// the final score is clamped.
const (
	budgetWithinPoints  = 40
	budgetOverPenalty   = 20
	budgetNeutralPoints = 20

	categoryMatchPoints = 30
	categoryMissPenalty = 10

	conditionMatchPoints = 20

	featurePoints = 10
)

// Recommendation tiers, inclusive lower bounds evaluated high to low.
const (
	RecommendationHigh    = "Highly recommended"
	RecommendationGood    = "Good match"
	RecommendationPartial = "Partial match - review carefully"
	RecommendationLow     = "May not meet needs"
)

// Requirements describes what the user is looking for. Every field is
// optional; an absent field skips (or neutralizes) its dimension.
type Requirements struct {
	BudgetMax *float64 `json:"budget_max,omitempty" jsonschema:"Maximum price the user will pay"`
	Category  string   `json:"category,omitempty" jsonschema:"Product category keyword, e.g. thinkpad"`
	Condition string   `json:"condition,omitempty" jsonschema:"Preferred condition, e.g. new or like new"`
	Features  []string `json:"features,omitempty" jsonschema:"Required feature keywords"`
}

// Result is the outcome of scoring one listing against one set of
// requirements.
type Result struct {
	MatchScore     int      `json:"match_score" jsonschema:"Suitability score from 0 to 100"`
	Pros           []string `json:"pros" jsonschema:"Supporting reasons in evaluation order"`
	Cons           []string `json:"cons" jsonschema:"Detracting reasons in evaluation order"`
	Recommendation string   `json:"recommendation" jsonschema:"One of four fixed recommendation tiers"`
	PriceValue     int      `json:"price_value" jsonschema:"Numeric price extracted from the listing, 0 if unparseable"`
	Title          string   `json:"title,omitempty" jsonschema:"Listing title passed through from the input"`
}

// First run of digits, optionally with thousands separators. An optional
// currency symbol before it is irrelevant to the capture.
var priceRe = regexp.MustCompile(`[0-9][0-9,]*`)

// ParsePrice extracts the first integer amount from free-form price text.
// "$450" -> 450, "1,200" -> 1200, "N/A" or empty -> 0.
func ParsePrice(raw string) int {
	m := priceRe.FindString(raw)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Score evaluates how well a listing matches the requirements.
//
// Dimensions are evaluated in a fixed order (budget, category, condition,
// features), each contributing at most one pro or con. Text comparisons are
// case-insensitive substring checks against title and description.
func Score(listing domain.ListingDetails, req Requirements) Result {
	score := 0.0
	pros := []string{}
	cons := []string{}

	priceValue := ParsePrice(listing.Price)
	haystack := strings.ToLower(listing.Title) + "\n" + strings.ToLower(listing.Description)

	// Budget: reward fitting, penalize exceeding, stay neutral when the
	// user stated no constraint.
	if req.BudgetMax != nil && *req.BudgetMax > 0 {
		budget := *req.BudgetMax
		if float64(priceValue) <= budget {
			score += budgetWithinPoints
			pros = append(pros, fmt.Sprintf("Within budget ($%d <= $%s)", priceValue, formatAmount(budget)))
		} else {
			score -= budgetOverPenalty
			cons = append(cons, fmt.Sprintf("Over budget ($%d > $%s)", priceValue, formatAmount(budget)))
		}
	} else {
		score += budgetNeutralPoints
	}

	// Category keyword against title/description.
	if category := strings.ToLower(strings.TrimSpace(req.Category)); category != "" {
		if strings.Contains(haystack, category) {
			score += categoryMatchPoints
			pros = append(pros, "Matches category: "+category)
		} else {
			score -= categoryMissPenalty
			cons = append(cons, "May not match category: "+category)
		}
	}

	// Condition is asymmetric: a match earns points, but a listing with no
	// condition info (or a different one) is never penalized.
	if want := strings.ToLower(strings.TrimSpace(req.Condition)); want != "" {
		if have := strings.ToLower(listing.Condition); have != "" && strings.Contains(have, want) {
			score += conditionMatchPoints
			pros = append(pros, "Condition matches: "+have)
		}
	}

	// Features: proportional credit for the matched subset.
	if len(req.Features) > 0 {
		matched := make([]string, 0, len(req.Features))
		for _, f := range req.Features {
			if strings.Contains(haystack, strings.ToLower(f)) {
				matched = append(matched, f)
			}
		}
		if len(matched) > 0 {
			score += featurePoints * float64(len(matched)) / float64(len(req.Features))
			pros = append(pros, "Has features: "+strings.Join(matched, ", "))
		} else {
			cons = append(cons, "Missing features: "+strings.Join(req.Features, ", "))
		}
	}

	final := clamp(int(math.Round(score)), 0, 100)

	return Result{
		MatchScore:     final,
		Pros:           pros,
		Cons:           cons,
		Recommendation: recommendation(final),
		PriceValue:     priceValue,
		Title:          listing.Title,
	}
}

func recommendation(score int) string {
	switch {
	case score >= 80:
		return RecommendationHigh
	case score >= 60:
		return RecommendationGood
	case score >= 40:
		return RecommendationPartial
	default:
		return RecommendationLow
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
