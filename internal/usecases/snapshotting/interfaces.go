package snapshotting

import (
	"context"

	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
)

// Snapshotter define a interface do orquestrador de snapshots de diagnóstico
type Snapshotter interface {
	// BuildSnapshot monta o snapshot de diagnóstico para um cliente e
	// período. Nunca retorna erro: qualquer falha interna degrada para o
	// relatório de demonstração.
	BuildSnapshot(ctx context.Context, customerID string, dateRange string) *domain.SnapshotResponse

	// History lista os snapshots persistidos mais recentes de um cliente
	History(ctx context.Context, customerID string, limit int) ([]*domain.SnapshotEntry, error)
}
