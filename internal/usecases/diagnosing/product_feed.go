package diagnosing

import (
	"fmt"

	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
)

// maxProductFindings limita quantos produtos reprovados entram no relatório.
// A ordem de entrada do provedor decide quais são reportados (truncamento
// estável, sem reordenação interna).
const maxProductFindings = 10

// AnalyzeProductFeed gera um finding de severidade alta para cada produto
// reprovado, até o limite de truncamento. A descrição narra apenas o primeiro
// motivo de reprovação; a lista completa fica nos metadados.
func AnalyzeProductFeed(products []*domain.DisapprovedProduct) []domain.Finding {
	findings := make([]domain.Finding, 0, len(products))

	for i, product := range products {
		if i >= maxProductFindings {
			break
		}

		description := fmt.Sprintf("Product '%s' (ID: %s) is disapproved", product.Title, product.ProductID)
		if len(product.Issues) > 0 {
			description += fmt.Sprintf(": %s", product.Issues[0])
		}

		findings = append(findings, domain.Finding{
			Issue: domain.Issue{
				Type:        domain.IssueDisapprovedProduct,
				Severity:    domain.SeverityHigh,
				Description: description,
				Metadata: map[string]any{
					"product_id":    product.ProductID,
					"product_title": product.Title,
					"issues":        product.Issues,
				},
			},
			Action: domain.RecommendedAction{
				ActionType:       domain.ActionFixProductFeed,
				Description:      fmt.Sprintf("Fix product data for '%s' and request a review in Merchant Center", product.Title),
				Priority:         domain.SeverityHigh,
				RelatedIssueType: domain.IssueDisapprovedProduct,
			},
		})
	}

	return findings
}
