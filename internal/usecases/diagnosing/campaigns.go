package diagnosing

import (
	"fmt"

	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
)

// Limiares fixos das regras de campanha. São política do produto, não
// configuração por chamada.
const (
	campaignMinWastedSpend = 50.0
	campaignHighCPAFactor  = 2.0
)

// AnalyzeCampaigns avalia duas regras mutuamente exclusivas por campanha, na
// ordem declarada — a primeira que casar vence e a campanha não gera um
// segundo finding:
//
//  1. gasto relevante sem nenhuma conversão (severidade alta);
//  2. CPA acima de 2x a média da conta, quando ambos os CPAs estão definidos
//     e são comparáveis (severidade média).
//
// Todas as campanhas são avaliadas, sem truncamento.
func AnalyzeCampaigns(campaigns []*domain.CampaignKPI, accountAvgCPA *float64) []domain.Finding {
	findings := make([]domain.Finding, 0)

	for _, campaign := range campaigns {
		switch {
		case campaign.Conversions == 0 && campaign.Spend > campaignMinWastedSpend:
			findings = append(findings, zeroConversionFinding(campaign))

		case hasComparableCPA(campaign, accountAvgCPA) && *campaign.CPA > campaignHighCPAFactor*(*accountAvgCPA):
			findings = append(findings, highCPAFinding(campaign, *accountAvgCPA))
		}
	}

	return findings
}

// hasComparableCPA garante que a regra de CPA alto só é avaliada quando o CPA
// da campanha e a média da conta existem e são diferentes de zero.
func hasComparableCPA(campaign *domain.CampaignKPI, accountAvgCPA *float64) bool {
	return campaign.CPA != nil && *campaign.CPA != 0 &&
		accountAvgCPA != nil && *accountAvgCPA != 0
}

func zeroConversionFinding(campaign *domain.CampaignKPI) domain.Finding {
	return domain.Finding{
		Issue: domain.Issue{
			Type:        domain.IssueZeroConversionCampaign,
			Severity:    domain.SeverityHigh,
			Description: fmt.Sprintf("Campaign '%s' spent $%.2f with 0 conversions", campaign.CampaignName, campaign.Spend),
			Metadata: map[string]any{
				"campaign_id":   campaign.CampaignID,
				"campaign_name": campaign.CampaignName,
				"spend":         campaign.Spend,
				"conversions":   campaign.Conversions,
			},
		},
		Action: domain.RecommendedAction{
			ActionType:       domain.ActionOptimizeCampaign,
			Description:      fmt.Sprintf("Review and optimize campaign '%s' or pause it to prevent budget waste", campaign.CampaignName),
			Priority:         domain.SeverityHigh,
			RelatedIssueType: domain.IssueZeroConversionCampaign,
		},
	}
}

func highCPAFinding(campaign *domain.CampaignKPI, accountAvgCPA float64) domain.Finding {
	return domain.Finding{
		Issue: domain.Issue{
			Type:        domain.IssueHighCPACampaign,
			Severity:    domain.SeverityMedium,
			Description: fmt.Sprintf("Campaign '%s' has CPA of $%.2f, 2x higher than account average", campaign.CampaignName, *campaign.CPA),
			Metadata: map[string]any{
				"campaign_id":     campaign.CampaignID,
				"campaign_name":   campaign.CampaignName,
				"cpa":             *campaign.CPA,
				"account_avg_cpa": accountAvgCPA,
			},
		},
		Action: domain.RecommendedAction{
			ActionType:       domain.ActionOptimizeCampaign,
			Description:      fmt.Sprintf("Optimize targeting or ad copy for campaign '%s' to reduce CPA", campaign.CampaignName),
			Priority:         domain.SeverityMedium,
			RelatedIssueType: domain.IssueHighCPACampaign,
		},
	}
}
