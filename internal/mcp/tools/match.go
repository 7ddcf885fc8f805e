package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nexusai/nexus-mcp/internal/domain"
	"github.com/nexusai/nexus-mcp/internal/domain/match"
	"github.com/nexusai/nexus-mcp/pkg/logging"
)

// AnalyzeMatchParams defines the arguments for the analyze_match tool.
// Both records are optional: an absent record scores as an empty one.
type AnalyzeMatchParams struct {
	ItemDetails      *domain.ListingDetails `json:"item_details,omitempty" jsonschema:"Output of get_item_details"`
	UserRequirements *match.Requirements    `json:"user_requirements,omitempty" jsonschema:"User needs: budget_max, category, condition, features"`
}

const analyzeMatchDescription = "Score how well a listing matches user requirements " +
	"(budget, category, condition, features). Returns a 0-100 score with pros, cons, " +
	"and a recommendation tier; use it to rank candidates before presenting them."

type analyzeMatchTool struct {
	logger *logging.Logger
}

// WithAnalyzeMatch registers the analyze_match tool
func WithAnalyzeMatch(logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := analyzeMatchTool{logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "analyze_match",
			Description: analyzeMatchDescription,
		}, handler.handle)
	}
}

func (t analyzeMatchTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *AnalyzeMatchParams) (*sdkmcp.CallToolResult, any, error) {
	_ = ctx

	listing := domain.ListingDetails{}
	requirements := match.Requirements{}
	if params != nil {
		if params.ItemDetails != nil {
			listing = *params.ItemDetails
		}
		if params.UserRequirements != nil {
			requirements = *params.UserRequirements
		}
	}

	result := match.Score(listing, requirements)

	if t.logger != nil {
		t.logger.Info("analyze_match scored",
			"title", result.Title,
			"score", result.MatchScore,
			"recommendation", result.Recommendation,
			"pros", len(result.Pros),
			"cons", len(result.Cons),
		)
	}

	return textResult(formatMatch(result)), result, nil
}

func formatMatch(result match.Result) string {
	msg := fmt.Sprintf("[analyze_match] Score %d/100 (%s)", result.MatchScore, result.Recommendation)

	for _, pro := range result.Pros {
		msg += fmt.Sprintf("\n+ %s", pro)
	}
	for _, con := range result.Cons {
		msg += fmt.Sprintf("\n- %s", con)
	}

	return msg
}
