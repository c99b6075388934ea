package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"maasaicraft.co.ke/shop/api/pkg/models"
	"maasaicraft.co.ke/shop/api/pkg/orders"
)

// AIReportResponse represents the structure of AI-generated reports
type AIReportResponse struct {
	Status      string     `json:"status"`
	Data        ReportData `json:"data"`
	GeneratedAt time.Time  `json:"generated_at"`
	AIEnabled   bool       `json:"ai_enabled"`
}

type ReportData struct {
	RawData    interface{} `json:"raw_data"`
	AIInsights string      `json:"ai_insights,omitempty"`
	Summary    string      `json:"summary"`
	Error      string      `json:"error,omitempty"`
}

// GenerateSalesReport generates AI-powered insights from an order summary
func GenerateSalesReport(ctx context.Context, summary *orders.Summary) (*AIReportResponse, error) {
	response := &AIReportResponse{
		Status:      "success",
		GeneratedAt: time.Now(),
		AIEnabled:   IsEnabled(),
		Data: ReportData{
			RawData: summary,
			Summary: "Sales data retrieved successfully",
		},
	}

	if IsEnabled() {
		userPrompt := formatSalesDataPrompt(summary)
		aiInsights, err := generateCompletion(ctx, SalesReportSystemPrompt, userPrompt)
		if err != nil {
			response.Data.Error = "AI analysis failed: " + err.Error()
		} else {
			response.Data.AIInsights = aiInsights
			response.Data.Summary = "AI-generated sales insights and recommendations"
		}
	} else {
		response.Data.Summary = "Raw sales data (AI insights unavailable)"
	}

	return response, nil
}

// lowStockThreshold marks products the shop should restock soon.
const lowStockThreshold = 5

// GenerateInventoryReport generates AI-powered analysis of the product catalog
func GenerateInventoryReport(ctx context.Context, products []*models.Product, lowStockOnly bool) (*AIReportResponse, error) {
	if lowStockOnly {
		filtered := make([]*models.Product, 0, len(products))
		for _, p := range products {
			if p.IsLowStock(lowStockThreshold) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	response := &AIReportResponse{
		Status:      "success",
		GeneratedAt: time.Now(),
		AIEnabled:   IsEnabled(),
		Data: ReportData{
			RawData: products,
			Summary: "Inventory status data retrieved successfully",
		},
	}

	if IsEnabled() {
		userPrompt := formatInventoryDataPrompt(products, lowStockOnly)
		aiInsights, err := generateCompletion(ctx, InventoryReportSystemPrompt, userPrompt)
		if err != nil {
			response.Data.Error = "AI analysis failed: " + err.Error()
		} else {
			response.Data.AIInsights = aiInsights
			response.Data.Summary = "AI-generated inventory insights and recommendations"
		}
	} else {
		response.Data.Summary = "Raw inventory data (AI insights unavailable)"
	}

	return response, nil
}

// Helper functions to format data for AI prompts

func formatSalesDataPrompt(summary *orders.Summary) string {
	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return fmt.Sprintf(`Analyze the following sales summary for a Kenyan handcraft store (amounts in KSh) and provide business insights:

%s

Please provide:
1. Key performance highlights and trends
2. Areas of concern or opportunity
3. Specific recommendations for business growth
4. Actionable next steps for the shop owners`, string(jsonData))
}

func formatInventoryDataPrompt(products []*models.Product, lowStockOnly bool) string {
	jsonData, _ := json.MarshalIndent(products, "", "  ")
	alertsContext := ""
	if lowStockOnly {
		alertsContext = " (This data shows only products running low on stock)"
	}

	return fmt.Sprintf(`Analyze the following handcraft inventory data%s and provide operational insights:

%s

Please provide:
1. Immediate actions required for stock management
2. Demand patterns and restocking insights
3. Product mix optimization opportunities`, alertsContext, string(jsonData))
}
