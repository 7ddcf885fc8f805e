package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusai/nexus-mcp/internal/domain"
)

func budget(v float64) *float64 {
	return &v
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"$450", 450},
		{"1,200", 1200},
		{"$1,200 USD", 1200},
		{"about 300 dollars", 300},
		{"N/A", 0},
		{"", 0},
		{"free", 0},
		{"$0", 0},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ParsePrice(tc.raw))
		})
	}
}

func TestScoreEmptyRequirements(t *testing.T) {
	listing := domain.ListingDetails{
		Title:       "ThinkPad X1 Carbon",
		Price:       "$450",
		Description: "i7, 16GB RAM",
		Condition:   "Good",
	}

	result := Score(listing, Requirements{})

	assert.Equal(t, 20, result.MatchScore, "absent budget contributes the neutral 20, everything else skips")
	assert.Empty(t, result.Pros)
	assert.Empty(t, result.Cons)
	assert.Equal(t, RecommendationLow, result.Recommendation)
	assert.Equal(t, 450, result.PriceValue)
	assert.Equal(t, "ThinkPad X1 Carbon", result.Title)
}

func TestScoreEmptyInputs(t *testing.T) {
	result := Score(domain.ListingDetails{}, Requirements{})

	assert.Equal(t, 20, result.MatchScore)
	assert.Equal(t, 0, result.PriceValue)
	assert.Empty(t, result.Title)
	assert.NotNil(t, result.Pros, "pros must marshal as [], not null")
	assert.NotNil(t, result.Cons, "cons must marshal as [], not null")
}

func TestScoreFullMatch(t *testing.T) {
	listing := domain.ListingDetails{
		Title:       "ThinkPad X1 Carbon Gen 9",
		Price:       "$450",
		Description: "Intel i7, 16GB RAM, fast SSD, great battery",
		Condition:   "Excellent",
	}
	req := Requirements{
		BudgetMax: budget(500),
		Category:  "thinkpad",
		Condition: "excellent",
		Features:  []string{"i7", "16GB RAM", "SSD"},
	}

	result := Score(listing, req)

	assert.Equal(t, 100, result.MatchScore)
	assert.Equal(t, RecommendationHigh, result.Recommendation)
	assert.Equal(t, 450, result.PriceValue)
	require.Len(t, result.Pros, 4)
	assert.Equal(t, "Within budget ($450 <= $500)", result.Pros[0])
	assert.Equal(t, "Matches category: thinkpad", result.Pros[1])
	assert.Equal(t, "Condition matches: excellent", result.Pros[2])
	assert.Equal(t, "Has features: i7, 16GB RAM, SSD", result.Pros[3])
	assert.Empty(t, result.Cons)
}

func TestScoreOverBudgetAndWrongCategory(t *testing.T) {
	listing := domain.ListingDetails{
		Title: "MacBook Pro 16 inch M3 Max",
		Price: "$2800",
	}
	req := Requirements{
		BudgetMax: budget(1000),
		Category:  "laptop",
	}

	result := Score(listing, req)

	assert.Equal(t, 0, result.MatchScore, "negative accumulation clamps to zero")
	assert.Equal(t, RecommendationLow, result.Recommendation)
	require.Len(t, result.Cons, 2)
	assert.Equal(t, "Over budget ($2800 > $1000)", result.Cons[0])
	assert.Equal(t, "May not match category: laptop", result.Cons[1])
	assert.Empty(t, result.Pros)
}

func TestScoreMissingFeatures(t *testing.T) {
	listing := domain.ListingDetails{
		Title:       "Dell XPS 13",
		Price:       "$700",
		Description: "8GB RAM, 256GB SSD",
	}
	req := Requirements{
		Features: []string{"16GB RAM", "1TB SSD"},
	}

	result := Score(listing, req)

	assert.Equal(t, 20, result.MatchScore, "neutral budget only; no partial feature credit")
	require.Len(t, result.Cons, 1)
	assert.Equal(t, "Missing features: 16GB RAM, 1TB SSD", result.Cons[0])
	assert.Empty(t, result.Pros)
}

func TestScorePartialFeatureCredit(t *testing.T) {
	listing := domain.ListingDetails{
		Title:       "Gaming laptop",
		Description: "16GB RAM and RTX 3060",
	}
	req := Requirements{
		Features: []string{"16GB RAM", "RTX 3060", "1TB SSD"},
	}

	result := Score(listing, req)

	// 20 neutral + 10*2/3 = 26.67, rounded to 27.
	assert.Equal(t, 27, result.MatchScore)
	require.Len(t, result.Pros, 1)
	assert.Equal(t, "Has features: 16GB RAM, RTX 3060", result.Pros[0])
	assert.Empty(t, result.Cons)
}

func TestScoreConditionNeverPenalizes(t *testing.T) {
	t.Run("listing has no condition info", func(t *testing.T) {
		result := Score(domain.ListingDetails{Title: "Laptop"}, Requirements{Condition: "new"})
		assert.Equal(t, 20, result.MatchScore)
		assert.Empty(t, result.Cons)
	})

	t.Run("condition does not match", func(t *testing.T) {
		listing := domain.ListingDetails{Title: "Laptop", Condition: "For parts"}
		result := Score(listing, Requirements{Condition: "new"})
		assert.Equal(t, 20, result.MatchScore)
		assert.Empty(t, result.Cons)
		assert.Empty(t, result.Pros)
	})

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		listing := domain.ListingDetails{Title: "Laptop", Condition: "Like New - open box"}
		result := Score(listing, Requirements{Condition: "LIKE NEW"})
		assert.Equal(t, 40, result.MatchScore)
		require.Len(t, result.Pros, 1)
		assert.Equal(t, "Condition matches: like new - open box", result.Pros[0])
	})
}

func TestScoreCategoryCaseInsensitiveAgainstTitle(t *testing.T) {
	// Title casing must not matter: category matching is case-insensitive on
	// both sides.
	listing := domain.ListingDetails{Title: "THINKPAD T480"}
	result := Score(listing, Requirements{Category: "ThinkPad"})

	assert.Equal(t, 50, result.MatchScore)
	require.Len(t, result.Pros, 1)
	assert.Equal(t, "Matches category: thinkpad", result.Pros[0])
}

func TestScoreZeroBudgetMeansNoConstraint(t *testing.T) {
	listing := domain.ListingDetails{Price: "$900"}

	result := Score(listing, Requirements{BudgetMax: budget(0)})

	assert.Equal(t, 20, result.MatchScore)
	assert.Empty(t, result.Pros)
	assert.Empty(t, result.Cons)
}

func TestScoreUnparseablePriceWithinBudget(t *testing.T) {
	listing := domain.ListingDetails{Price: "contact seller"}

	result := Score(listing, Requirements{BudgetMax: budget(500)})

	assert.Equal(t, 0, result.PriceValue)
	assert.Equal(t, 40, result.MatchScore)
	require.Len(t, result.Pros, 1)
	assert.Equal(t, "Within budget ($0 <= $500)", result.Pros[0])
}

func TestRecommendationBoundaries(t *testing.T) {
	t.Run("exactly 80 is highly recommended", func(t *testing.T) {
		listing := domain.ListingDetails{
			Title:       "ThinkPad T480",
			Price:       "$400",
			Description: "i5, 8GB RAM",
		}
		req := Requirements{
			BudgetMax: budget(500),
			Category:  "thinkpad",
			Features:  []string{"i5", "8GB RAM"},
		}
		result := Score(listing, req)
		require.Equal(t, 80, result.MatchScore)
		assert.Equal(t, RecommendationHigh, result.Recommendation)
	})

	t.Run("exactly 60 is a good match", func(t *testing.T) {
		listing := domain.ListingDetails{
			Title:       "ThinkPad T480",
			Description: "8GB RAM",
		}
		req := Requirements{
			Category: "thinkpad",
			Features: []string{"8GB RAM"},
		}
		result := Score(listing, req)
		require.Equal(t, 60, result.MatchScore)
		assert.Equal(t, RecommendationGood, result.Recommendation)
	})

	t.Run("exactly 40 is a partial match", func(t *testing.T) {
		listing := domain.ListingDetails{Price: "$100"}
		result := Score(listing, Requirements{BudgetMax: budget(500)})
		require.Equal(t, 40, result.MatchScore)
		assert.Equal(t, RecommendationPartial, result.Recommendation)
	})
}

func TestScoreIsDeterministic(t *testing.T) {
	listing := domain.ListingDetails{
		Title:       "ThinkPad X1 Carbon Gen 9",
		Price:       "$450",
		Description: "i7, 16GB RAM, SSD",
		Condition:   "Excellent",
	}
	req := Requirements{
		BudgetMax: budget(500),
		Category:  "thinkpad",
		Condition: "excellent",
		Features:  []string{"i7", "16GB RAM", "SSD"},
	}

	first := Score(listing, req)
	second := Score(listing, req)

	assert.Equal(t, first, second)
}

func TestScoreAlwaysBounded(t *testing.T) {
	listings := []domain.ListingDetails{
		{},
		{Title: "x", Price: "$999,999,999"},
		{Title: "thinkpad", Price: "$1", Description: "a b c d", Condition: "new"},
	}
	reqs := []Requirements{
		{},
		{BudgetMax: budget(1), Category: "zzz", Condition: "zzz", Features: []string{"zzz", "yyy"}},
		{BudgetMax: budget(1e12), Category: "thinkpad", Condition: "new", Features: []string{"a", "b", "c", "d"}},
	}

	for _, l := range listings {
		for _, r := range reqs {
			result := Score(l, r)
			assert.GreaterOrEqual(t, result.MatchScore, 0)
			assert.LessOrEqual(t, result.MatchScore, 100)
			assert.GreaterOrEqual(t, result.PriceValue, 0)
		}
	}
}
