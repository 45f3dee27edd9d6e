package snapshotting

import (
	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
)

// DemoSnapshot monta o relatório de demonstração usado quando não há
// developer token configurado ou quando qualquer provedor falha. O conteúdo
// é totalmente determinístico — é o contrato de fallback que os chamadores
// assumem, então nada aqui pode ser amostrado ou depender do relógio.
func DemoSnapshot(dateRange string) *domain.SnapshotResponse {
	summary := &domain.Summary{
		DateRange:        dateRange,
		TotalSpend:       1250.50,
		TotalConversions: 45.0,
		AverageCPA:       floatPtr(27.79),
		ROAS:             floatPtr(3.2),
		Currency:         "USD",
	}

	issues := []domain.Issue{
		{
			Type:        domain.IssueDisapprovedProduct,
			Severity:    domain.SeverityHigh,
			Description: "Product 'Premium Wireless Headphones' (ID: 5521) is disapproved: Invalid GTIN",
			Metadata: map[string]any{
				"product_id":    "5521",
				"product_title": "Premium Wireless Headphones",
				"issues":        []string{"Invalid GTIN"},
			},
		},
		{
			Type:        domain.IssueZeroConversionCampaign,
			Severity:    domain.SeverityHigh,
			Description: "Campaign 'Display - Retargeting' spent $150.00 with 0 conversions",
			Metadata: map[string]any{
				"campaign_id":   "998877",
				"campaign_name": "Display - Retargeting",
				"spend":         150.00,
				"conversions":   0.0,
			},
		},
		{
			Type:        domain.IssueWastefulSearchTerm,
			Severity:    domain.SeverityMedium,
			Description: "Search term 'free headphones' spent $45.20 with 0 conversions",
			Metadata: map[string]any{
				"search_term": "free headphones",
				"cost":        45.20,
				"clicks":      32,
				"conversions": 0.0,
			},
		},
	}

	actions := []domain.RecommendedAction{
		{
			ActionType:       domain.ActionFixProductFeed,
			Description:      "Fix product data for 'Premium Wireless Headphones' and request a review in Merchant Center",
			Priority:         domain.SeverityHigh,
			RelatedIssueType: domain.IssueDisapprovedProduct,
		},
		{
			ActionType:       domain.ActionOptimizeCampaign,
			Description:      "Review and optimize campaign 'Display - Retargeting' or pause it to prevent budget waste",
			Priority:         domain.SeverityHigh,
			RelatedIssueType: domain.IssueZeroConversionCampaign,
		},
		{
			ActionType:       domain.ActionAddNegativeKeyword,
			Description:      "Add 'free headphones' as a negative keyword to prevent budget waste",
			Priority:         domain.SeverityMedium,
			RelatedIssueType: domain.IssueWastefulSearchTerm,
		},
	}

	return &domain.SnapshotResponse{
		Summary:            summary,
		TopIssues:          issues,
		RecommendedActions: actions,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
