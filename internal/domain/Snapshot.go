package domain

import (
	"time"
)

// Summary é o resumo imutável dos KPIs da conta para o período do snapshot.
// AverageCPA e ROAS podem ser nulos quando a conta não tem conversões.
type Summary struct {
	DateRange        string   `json:"date_range"`
	TotalSpend       float64  `json:"total_spend"`
	TotalConversions float64  `json:"total_conversions"`
	AverageCPA       *float64 `json:"average_cpa"`
	ROAS             *float64 `json:"roas"`
	Currency         string   `json:"currency"`
}

// SnapshotResponse é o relatório final entregue ao chamador: resumo da conta,
// issues ordenadas por severidade e ações ordenadas por prioridade.
type SnapshotResponse struct {
	Summary            *Summary            `json:"summary"`
	TopIssues          []Issue             `json:"top_issues"`
	RecommendedActions []RecommendedAction `json:"recommended_actions"`
}

// SnapshotEntry representa um snapshot persistido no histórico
type SnapshotEntry struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	DateRange  string            `json:"date_range"`
	Snapshot   *SnapshotResponse `json:"snapshot"`
	CreatedAt  time.Time         `json:"created_at"`
}
