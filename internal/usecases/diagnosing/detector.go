// Package diagnosing contém os detectores de padrões de desperdício de
// orçamento e risco de política, além do agregador que consolida os
// findings em um relatório ordenado. Todos os detectores são funções puras
// sobre dados já carregados em memória — nenhum faz I/O.
package diagnosing

import (
	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
)

// splitFindings projeta a lista combinada de findings nas duas listas do
// relatório final. O pareamento issue/ação só existe dentro do Finding; após
// a projeção o vínculo restante é o RelatedIssueType.
func splitFindings(findings []domain.Finding) ([]domain.Issue, []domain.RecommendedAction) {
	issues := make([]domain.Issue, 0, len(findings))
	actions := make([]domain.RecommendedAction, 0, len(findings))

	for _, finding := range findings {
		issues = append(issues, finding.Issue)
		actions = append(actions, finding.Action)
	}

	return issues, actions
}
