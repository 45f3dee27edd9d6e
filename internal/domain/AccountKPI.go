package domain

// AccountKPIs agrega os KPIs da conta inteira para o período consultado.
// AverageCPA e ROAS ficam nulos quando não há conversões no período.
type AccountKPIs struct {
	TotalSpend       float64  `json:"total_spend"`
	TotalConversions float64  `json:"total_conversions"`
	AverageCPA       *float64 `json:"average_cpa"`
	ROAS             *float64 `json:"roas"`
	Currency         string   `json:"currency"`
}

// CampaignKPI representa as métricas de uma campanha no período consultado.
// CPA fica nulo quando a campanha não tem conversões.
type CampaignKPI struct {
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	Spend        float64  `json:"spend"`
	Conversions  float64  `json:"conversions"`
	CPA          *float64 `json:"cpa"`
}
