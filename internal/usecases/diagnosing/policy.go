package diagnosing

import (
	"fmt"

	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
)

// maxPolicyFindings limita quantos registros de política entram no relatório
const maxPolicyFindings = 10

// AnalyzePolicyIssues gera um finding para cada registro de política, sem
// nenhum limiar — a presença na lista já indica um problema reportável. O
// registro inteiro é copiado para os metadados da issue.
//
// Um registro sem as chaves obrigatórias interrompe a análise com erro. O
// contrato com o provedor garante as chaves; a recuperação acontece na
// fronteira do orquestrador, não aqui.
func AnalyzePolicyIssues(policyIssues []domain.PolicyIssue) ([]domain.Finding, error) {
	findings := make([]domain.Finding, 0, len(policyIssues))

	for i, record := range policyIssues {
		if i >= maxPolicyFindings {
			break
		}

		adName, err := record.StringField(domain.PolicyKeyAdName)
		if err != nil {
			return nil, err
		}

		campaignName, err := record.StringField(domain.PolicyKeyCampaignName)
		if err != nil {
			return nil, err
		}

		approvalStatus, err := record.StringField(domain.PolicyKeyApprovalStatus)
		if err != nil {
			return nil, err
		}

		findings = append(findings, domain.Finding{
			Issue: domain.Issue{
				Type:        domain.IssuePolicyLimitedAd,
				Severity:    domain.SeverityMedium,
				Description: fmt.Sprintf("Ad '%s' in campaign '%s' has approval status: %s", adName, campaignName, approvalStatus),
				Metadata:    record.Clone(),
			},
			Action: domain.RecommendedAction{
				ActionType:       domain.ActionFixPolicyIssue,
				Description:      fmt.Sprintf("Review and modify ad '%s' to comply with Google Ads policies", adName),
				Priority:         domain.SeverityMedium,
				RelatedIssueType: domain.IssuePolicyLimitedAd,
			},
		})
	}

	return findings, nil
}
