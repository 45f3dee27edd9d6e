package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
)

// Tabela esperada:
//
//	CREATE TABLE snapshots (
//	    id          TEXT PRIMARY KEY,
//	    customer_id TEXT NOT NULL,
//	    date_range  TEXT NOT NULL,
//	    snapshot    JSONB NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
const snapshotsTable = "snapshots s"

// SnapshotRepository persiste o histórico de snapshots gerados. O histórico
// é somente-escrita no caminho de geração; a avaliação nunca lê daqui.
type SnapshotRepository interface {
	Save(ctx context.Context, entry *domain.SnapshotEntry) error
	ListByCustomerID(ctx context.Context, customerID string, limit int) ([]*domain.SnapshotEntry, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) Save(ctx context.Context, entry *domain.SnapshotEntry) error {
	snapshotJSON, err := json.Marshal(entry.Snapshot)
	if err != nil {
		return fmt.Errorf("erro ao serializar o snapshot: %w", err)
	}

	query, args, err := squirrel.
		Insert("snapshots").
		Columns("id", "customer_id", "date_range", "snapshot", "created_at").
		Values(entry.ID, entry.CustomerID, entry.DateRange, snapshotJSON, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar o snapshot: %w", err)
	}

	return nil
}

func (r *snapshotRepository) ListByCustomerID(ctx context.Context, customerID string, limit int) ([]*domain.SnapshotEntry, error) {
	query, args, err := squirrel.
		Select("s.id, s.customer_id, s.date_range, s.snapshot, s.created_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"s.customer_id": customerID}).
		OrderBy("s.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.SnapshotEntry, 0)
	for rows.Next() {
		entry, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *snapshotRepository) scanSnapshot(rows *sql.Rows) (*domain.SnapshotEntry, error) {
	entry := &domain.SnapshotEntry{}

	var snapshotJSON []byte
	if err := rows.Scan(&entry.ID, &entry.CustomerID, &entry.DateRange, &snapshotJSON, &entry.CreatedAt); err != nil {
		return nil, err
	}

	entry.Snapshot = &domain.SnapshotResponse{}
	if err := json.Unmarshal(snapshotJSON, entry.Snapshot); err != nil {
		return nil, fmt.Errorf("erro ao desserializar o snapshot: %w", err)
	}

	return entry, nil
}
