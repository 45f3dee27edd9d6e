package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
	"github.com/vfg2006/ads-diagnostics-api/internal/usecases/snapshotting"
)

type stubSnapshotter struct {
	calls []string
}

func (s *stubSnapshotter) BuildSnapshot(ctx context.Context, customerID string, dateRange string) *domain.SnapshotResponse {
	s.calls = append(s.calls, customerID)
	return snapshotting.DemoSnapshot(dateRange)
}

func (s *stubSnapshotter) History(ctx context.Context, customerID string, limit int) ([]*domain.SnapshotEntry, error) {
	return nil, nil
}

func TestSnapshotSyncService_syncAllSnapshots(t *testing.T) {
	snapshotter := &stubSnapshotter{}

	service := &SnapshotSyncService{
		config: SnapshotSyncConfig{
			CustomerIDs: []string{"1111111111", "2222222222", "3333333333"},
			DateRange:   "7d",
			SyncEnabled: true,
		},
		snapshotService: snapshotter,
	}

	service.syncAllSnapshots(context.Background())

	// Todas as contas configuradas são percorridas, na ordem da configuração
	assert.Equal(t, []string{"1111111111", "2222222222", "3333333333"}, snapshotter.calls)
	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSnapshotSyncService_StartDisabled(t *testing.T) {
	snapshotter := &stubSnapshotter{}

	service := &SnapshotSyncService{
		config:          SnapshotSyncConfig{SyncEnabled: false},
		snapshotService: snapshotter,
	}

	err := service.Start(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, snapshotter.calls)
}

func TestSnapshotSyncService_syncAlreadyRunning(t *testing.T) {
	snapshotter := &stubSnapshotter{}

	service := &SnapshotSyncService{
		config: SnapshotSyncConfig{
			CustomerIDs: []string{"1111111111"},
			DateRange:   "7d",
			SyncEnabled: true,
		},
		snapshotService: snapshotter,
		syncRunning:     true,
	}

	service.syncAllSnapshots(context.Background())

	// Execução concorrente é ignorada enquanto outra está em andamento
	assert.Empty(t, snapshotter.calls)
}
