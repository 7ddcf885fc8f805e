package main

import (
	"context"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// Hardcoded test data - each test is independent
	testListingURL = "https://xmrbazaar.com/listing/thinkpad-x1-carbon-gen-9"
	testVendorURL  = "https://xmrbazaar.com/user/techdeals"
)

func main() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "nexusai-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: "http://localhost:8080/mcp/stream",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testSearchMarket(ctx, session)
	testItemDetails(ctx, session)
	testVendorRating(ctx, session)
	testAnalyzeMatch(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}

	for _, tool := range result.Tools {
		fmt.Printf("  %s\n", tool.Name)
	}
	fmt.Println("list tools passed")
}

func testSearchMarket(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: search_market")

	params := &mcp.CallToolParams{
		Name: "search_market",
		Arguments: map[string]any{
			"query":       "thinkpad",
			"max_results": 5,
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("search_market failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("search_market passed")
}

func testItemDetails(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: get_item_details")

	params := &mcp.CallToolParams{
		Name: "get_item_details",
		Arguments: map[string]any{
			"url": testListingURL,
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		// Expected to fail if the listing no longer exists - that's ok for this test
		log.Printf("get_item_details: %v (expected if test listing is gone)", err)
		return
	}

	printResult(result)
	fmt.Println("get_item_details passed")
}

func testVendorRating(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: get_vendor_rating")

	params := &mcp.CallToolParams{
		Name: "get_vendor_rating",
		Arguments: map[string]any{
			"vendor_url": testVendorURL,
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("get_vendor_rating: %v (expected if test vendor is gone)", err)
		return
	}

	printResult(result)
	fmt.Println("get_vendor_rating passed")
}

func testAnalyzeMatch(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: analyze_match")

	// Test 1: Full match against a laptop listing
	params := &mcp.CallToolParams{
		Name: "analyze_match",
		Arguments: map[string]any{
			"item_details": map[string]any{
				"title":       "ThinkPad X1 Carbon Gen 9",
				"price":       "$450",
				"description": "i7, 16GB RAM, 512GB SSD, barely used",
				"condition":   "Excellent",
			},
			"user_requirements": map[string]any{
				"budget_max": 500,
				"category":   "thinkpad",
				"condition":  "excellent",
				"features":   []string{"i7", "16GB RAM", "SSD"},
			},
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("analyze_match failed: %v", err)
		return
	}
	printResult(result)

	// Test 2: With empty requirements (edge case)
	fmt.Println("analyze_match with empty requirements")
	paramsEmpty := &mcp.CallToolParams{
		Name: "analyze_match",
		Arguments: map[string]any{
			"item_details": map[string]any{
				"title": "Mystery item",
				"price": "N/A",
			},
			"user_requirements": map[string]any{},
		},
	}

	resultEmpty, err := session.CallTool(ctx, paramsEmpty)
	if err != nil {
		log.Printf("analyze_match (empty) failed: %v", err)
		return
	}

	printResult(resultEmpty)
	fmt.Println("analyze_match passed")
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
