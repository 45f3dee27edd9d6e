package snapshotting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/merchantcenter"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/repository"
	"github.com/vfg2006/ads-diagnostics-api/internal/config"
	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
	"github.com/vfg2006/ads-diagnostics-api/internal/usecases/diagnosing"
	"github.com/vfg2006/ads-diagnostics-api/pkg/utils"
)

const (
	// DefaultDateRange é o período usado quando o chamador não informa um
	DefaultDateRange = "7d"

	// searchTermMinSpend filtra termos de pesquisa irrelevantes na origem
	searchTermMinSpend = 10.0
)

// Service orquestra a montagem de snapshots: decide entre modo demo e modo
// live, consulta os provedores, dirige os detectores pelo agregador e, em
// qualquer falha, degrada para o relatório de demonstração.
type Service struct {
	cfg                *config.Config
	adsService         googleads.AdsIntegrator
	merchantService    merchantcenter.MerchantIntegrator
	snapshotRepository repository.SnapshotRepository
	saveHistory        bool
	demoMode           bool
}

// NewService cria uma nova instância do orquestrador de snapshots. O modo
// demo é decidido aqui, a partir da configuração injetada — sem o developer
// token do Google Ads os provedores nunca são invocados.
func NewService(
	cfg *config.Config,
	adsService googleads.AdsIntegrator,
	merchantService merchantcenter.MerchantIntegrator,
) *Service {
	return &Service{
		cfg:             cfg,
		adsService:      adsService,
		merchantService: merchantService,
		demoMode:        cfg.GoogleAds.DeveloperToken == "",
	}
}

// WithHistory habilita a persistência de snapshots no histórico. O histórico
// é um registro de auditoria gravado na fronteira — nunca é lido durante a
// avaliação, que permanece uma função pura das entradas.
func (s *Service) WithHistory(snapshotRepo repository.SnapshotRepository) *Service {
	s.snapshotRepository = snapshotRepo
	s.saveHistory = snapshotRepo != nil
	return s
}

// BuildSnapshot monta o snapshot de diagnóstico para um cliente e período.
// Contrato de nunca-falhar: toda falha de provedor ou de agregação é
// registrada e convertida no relatório de demonstração.
func (s *Service) BuildSnapshot(ctx context.Context, customerID string, dateRange string) *domain.SnapshotResponse {
	if dateRange == "" {
		dateRange = DefaultDateRange
	}

	if s.demoMode {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"date_range":  dateRange,
		}).Info("snapshot: developer token não configurado, usando relatório de demonstração")
		return DemoSnapshot(dateRange)
	}

	snapshot, err := s.buildLiveSnapshot(ctx, customerID, dateRange)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"customer_id": customerID,
			"date_range":  dateRange,
		}).Warn("snapshot: falha no caminho live, degradando para o relatório de demonstração")
		return DemoSnapshot(dateRange)
	}

	s.saveToHistory(ctx, customerID, dateRange, snapshot)

	return snapshot
}

// buildLiveSnapshot executa o caminho live completo: provedores → detectores
// → agregador. Qualquer erro aborta o caminho inteiro — degradação tudo-ou-
// nada, sem montagem de resultado parcial.
func (s *Service) buildLiveSnapshot(ctx context.Context, customerID string, dateRange string) (*domain.SnapshotResponse, error) {
	accountKPIs, err := s.adsService.GetAccountKPIs(ctx, customerID, dateRange)
	if err != nil {
		return nil, err
	}

	campaignKPIs, err := s.adsService.GetCampaignKPIs(ctx, customerID, dateRange)
	if err != nil {
		return nil, err
	}

	searchTerms, err := s.adsService.GetSearchTerms(ctx, customerID, dateRange, searchTermMinSpend)
	if err != nil {
		return nil, err
	}

	policyIssues, err := s.adsService.GetPolicyIssues(ctx, customerID)
	if err != nil {
		return nil, err
	}

	disapprovedProducts, err := s.merchantService.GetDisapprovedProducts(ctx)
	if err != nil {
		return nil, err
	}

	issues, actions, err := diagnosing.Aggregate(diagnosing.Inputs{
		DisapprovedProducts: disapprovedProducts,
		Campaigns:           campaignKPIs,
		AccountAvgCPA:       accountKPIs.AverageCPA,
		SearchTerms:         searchTerms,
		PolicyIssues:        policyIssues,
	})
	if err != nil {
		return nil, err
	}

	return &domain.SnapshotResponse{
		Summary: &domain.Summary{
			DateRange:        dateRange,
			TotalSpend:       accountKPIs.TotalSpend,
			TotalConversions: accountKPIs.TotalConversions,
			AverageCPA:       accountKPIs.AverageCPA,
			ROAS:             accountKPIs.ROAS,
			Currency:         accountKPIs.Currency,
		},
		TopIssues:          issues,
		RecommendedActions: actions,
	}, nil
}

// saveToHistory grava o snapshot no histórico quando habilitado. Falha de
// gravação nunca afeta a resposta — apenas registra um warning.
func (s *Service) saveToHistory(ctx context.Context, customerID string, dateRange string, snapshot *domain.SnapshotResponse) {
	if !s.saveHistory {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("snapshot: erro ao gerar o ID do histórico")
		return
	}

	entry := &domain.SnapshotEntry{
		ID:         id,
		CustomerID: customerID,
		DateRange:  dateRange,
		Snapshot:   snapshot,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.snapshotRepository.Save(ctx, entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"customer_id": customerID,
			"date_range":  dateRange,
		}).Warn("snapshot: erro ao salvar snapshot no histórico")
	}
}

// History lista os snapshots persistidos mais recentes de um cliente
func (s *Service) History(ctx context.Context, customerID string, limit int) ([]*domain.SnapshotEntry, error) {
	if !s.saveHistory {
		return []*domain.SnapshotEntry{}, nil
	}

	return s.snapshotRepository.ListByCustomerID(ctx, customerID, limit)
}
