package diagnosing

import (
	"fmt"

	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
)

// Limiares fixos das regras de termos de pesquisa
const (
	maxSearchTermFindings  = 15
	searchTermMinWaste     = 20.0
	searchTermMinLowSpend  = 50.0
	searchTermLowRateLimit = 1.0
)

// AnalyzeSearchTerms avalia os primeiros termos da lista (truncamento
// estável) contra duas regras mutuamente exclusivas, na ordem declarada:
//
//  1. custo relevante sem nenhuma conversão — candidato a palavra-chave
//     negativa (severidade média);
//  2. taxa de conversão baixa com gasto significativo, quando a taxa está
//     definida (severidade baixa).
func AnalyzeSearchTerms(terms []*domain.SearchTermData) []domain.Finding {
	findings := make([]domain.Finding, 0)

	for i, term := range terms {
		if i >= maxSearchTermFindings {
			break
		}

		switch {
		case term.Conversions == 0 && term.Cost > searchTermMinWaste:
			findings = append(findings, wastefulTermFinding(term))

		case hasLowConversionRate(term):
			findings = append(findings, lowConversionTermFinding(term))
		}
	}

	return findings
}

func hasLowConversionRate(term *domain.SearchTermData) bool {
	return term.ConversionRate != nil && *term.ConversionRate != 0 &&
		*term.ConversionRate < searchTermLowRateLimit &&
		term.Cost > searchTermMinLowSpend
}

func wastefulTermFinding(term *domain.SearchTermData) domain.Finding {
	return domain.Finding{
		Issue: domain.Issue{
			Type:        domain.IssueWastefulSearchTerm,
			Severity:    domain.SeverityMedium,
			Description: fmt.Sprintf("Search term '%s' spent $%.2f with 0 conversions", term.SearchTerm, term.Cost),
			Metadata: map[string]any{
				"search_term": term.SearchTerm,
				"cost":        term.Cost,
				"clicks":      term.Clicks,
				"conversions": term.Conversions,
			},
		},
		Action: domain.RecommendedAction{
			ActionType:       domain.ActionAddNegativeKeyword,
			Description:      fmt.Sprintf("Add '%s' as a negative keyword to prevent budget waste", term.SearchTerm),
			Priority:         domain.SeverityMedium,
			RelatedIssueType: domain.IssueWastefulSearchTerm,
		},
	}
}

func lowConversionTermFinding(term *domain.SearchTermData) domain.Finding {
	return domain.Finding{
		Issue: domain.Issue{
			Type:        domain.IssueLowConversionSearchTerm,
			Severity:    domain.SeverityLow,
			Description: fmt.Sprintf("Search term '%s' has low conversion rate (%.2f%%) with $%.2f spend", term.SearchTerm, *term.ConversionRate, term.Cost),
			Metadata: map[string]any{
				"search_term":     term.SearchTerm,
				"cost":            term.Cost,
				"conversion_rate": *term.ConversionRate,
			},
		},
		Action: domain.RecommendedAction{
			ActionType:       domain.ActionReviewSearchTerm,
			Description:      fmt.Sprintf("Review search term '%s' and consider adding as negative or adjusting match type", term.SearchTerm),
			Priority:         domain.SeverityLow,
			RelatedIssueType: domain.IssueLowConversionSearchTerm,
		},
	}
}
