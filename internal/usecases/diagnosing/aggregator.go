package diagnosing

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
)

// Inputs reúne as quatro categorias de métricas normalizadas de um snapshot
type Inputs struct {
	DisapprovedProducts []*domain.DisapprovedProduct
	Campaigns           []*domain.CampaignKPI
	AccountAvgCPA       *float64
	SearchTerms         []*domain.SearchTermData
	PolicyIssues        []domain.PolicyIssue
}

// Aggregate executa os quatro detectores em ordem fixa (produtos, campanhas,
// termos de pesquisa, política), concatena os findings nessa ordem e projeta
// as duas listas do relatório, ordenadas de forma estável por severidade e
// prioridade. Empates entre detectores são resolvidos pela ordem de execução,
// nunca por comparação de conteúdo — dentro do mesmo rank a ordem de emissão
// é preservada.
func Aggregate(in Inputs) ([]domain.Issue, []domain.RecommendedAction, error) {
	findings := make([]domain.Finding, 0)

	findings = append(findings, AnalyzeProductFeed(in.DisapprovedProducts)...)
	findings = append(findings, AnalyzeCampaigns(in.Campaigns, in.AccountAvgCPA)...)
	findings = append(findings, AnalyzeSearchTerms(in.SearchTerms)...)

	policyFindings, err := AnalyzePolicyIssues(in.PolicyIssues)
	if err != nil {
		return nil, nil, err
	}
	findings = append(findings, policyFindings...)

	issues, actions := splitFindings(findings)

	sort.SliceStable(issues, func(i, j int) bool {
		return domain.SeverityRank(issues[i].Severity) < domain.SeverityRank(issues[j].Severity)
	})

	sort.SliceStable(actions, func(i, j int) bool {
		return domain.SeverityRank(actions[i].Priority) < domain.SeverityRank(actions[j].Priority)
	})

	logrus.WithFields(logrus.Fields{
		"issues":  len(issues),
		"actions": len(actions),
	}).Debug("diagnostics: aggregation finished")

	return issues, actions, nil
}
