package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-diagnostics-api/internal/config"
	"github.com/vfg2006/ads-diagnostics-api/internal/usecases/snapshotting"
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots
type SnapshotSyncConfig struct {
	CronSchedule string
	CustomerIDs  []string
	DateRange    string
	SyncEnabled  bool
}

// SnapshotSyncService agenda a geração diária de snapshots de diagnóstico
// para as contas configuradas. Com o histórico habilitado no serviço de
// snapshots, cada execução fica registrada para consulta posterior.
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	snapshotService     snapshotting.Snapshotter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSnapshotSyncService cria uma nova instância do serviço de sincronização
func NewSnapshotSyncService(
	snapshotService snapshotting.Snapshotter,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		CustomerIDs:  appConfig.SnapshotSync.CustomerIDs,
		DateRange:    appConfig.SnapshotSync.DateRange,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"customer_ids":  len(syncConfig.CustomerIDs),
		"date_range":    syncConfig.DateRange,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          syncConfig,
		snapshotService: snapshotService,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots gera um snapshot para cada conta configurada. BuildSnapshot
// nunca falha, então a execução sempre percorre a lista inteira.
func (s *SnapshotSyncService) syncAllSnapshots(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	for _, customerID := range s.config.CustomerIDs {
		snapshot := s.snapshotService.BuildSnapshot(ctx, customerID, s.config.DateRange)

		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"date_range":  s.config.DateRange,
			"issues":      len(snapshot.TopIssues),
		}).Info("Snapshot diário gerado")
	}

	logrus.WithField("duration", time.Since(s.lastSyncStartedAt).String()).
		Info("Sincronização de snapshots concluída")
}
