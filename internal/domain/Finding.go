package domain

// Severidades de issues e prioridades de ações. Qualquer token fora
// desta enumeração é ordenado por último, nunca gera erro.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Tipos de issue emitidos pelos detectores
const (
	IssueDisapprovedProduct      = "disapproved_product"
	IssueZeroConversionCampaign  = "zero_conversion_campaign"
	IssueHighCPACampaign         = "high_cpa_campaign"
	IssueWastefulSearchTerm      = "wasteful_search_term"
	IssueLowConversionSearchTerm = "low_conversion_search_term"
	IssuePolicyLimitedAd         = "policy_limited_ad"
)

// Tipos de ação recomendada
const (
	ActionFixProductFeed     = "fix_product_feed"
	ActionOptimizeCampaign   = "optimize_campaign"
	ActionAddNegativeKeyword = "add_negative_keyword"
	ActionReviewSearchTerm   = "review_search_term"
	ActionFixPolicyIssue     = "fix_policy_issue"
)

// Issue representa um problema detectado em uma categoria de métricas.
// O formato de Metadata depende do Type; consumidores devem verificar
// o tipo antes de interpretar os campos.
type Issue struct {
	Type        string         `json:"type"`
	Severity    string         `json:"severity"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}

// RecommendedAction representa uma remediação sugerida para uma issue.
// RelatedIssueType é um rótulo de referência, não um ponteiro — após a
// ordenação final é o único vínculo com a issue que a originou.
type RecommendedAction struct {
	ActionType       string `json:"action_type"`
	Description      string `json:"description"`
	Priority         string `json:"priority"`
	RelatedIssueType string `json:"related_issue_type"`
}

// Finding é o par (issue, ação) produzido por um detector em uma única
// emissão. As duas listas projetadas do relatório final são derivadas
// dos findings apenas na fronteira do agregador.
type Finding struct {
	Issue  Issue
	Action RecommendedAction
}

var severityRank = map[string]int{
	SeverityHigh:   0,
	SeverityMedium: 1,
	SeverityLow:    2,
}

// SeverityRank retorna o rank ordinal de uma severidade ou prioridade
// (high < medium < low < desconhecido). Usado apenas para ordenação.
func SeverityRank(severity string) int {
	if rank, ok := severityRank[severity]; ok {
		return rank
	}
	return 3
}
