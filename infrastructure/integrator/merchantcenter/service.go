package merchantcenter

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/merchantcenter/mcclient"
	"github.com/vfg2006/ads-diagnostics-api/internal/config"
	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
	"github.com/vfg2006/ads-diagnostics-api/pkg/utils"
)

// maxProductStatuses limita a página consultada no Content API. O relatório
// usa só os primeiros produtos reprovados; não há razão para paginar o feed.
const maxProductStatuses = 250

// MerchantIntegrator define a interface do provedor do feed de produtos
type MerchantIntegrator interface {
	// GetDisapprovedProducts lista os produtos reprovados na ordem do feed
	GetDisapprovedProducts(ctx context.Context) ([]*domain.DisapprovedProduct, error)

	// GetFeedHealth resume o estado de aprovação do feed
	GetFeedHealth(ctx context.Context) (*domain.FeedHealth, error)
}

type MerchantCenterIntegrator struct {
	cfg    *config.Config
	Client mcclient.Client
}

func New(cfg *config.Config, client mcclient.Client) *MerchantCenterIntegrator {
	return &MerchantCenterIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MerchantCenterIntegrator) GetDisapprovedProducts(ctx context.Context) ([]*domain.DisapprovedProduct, error) {
	statuses, err := s.Client.ListProductStatuses(maxProductStatuses)
	if err != nil {
		logrus.WithError(err).Error("merchant: failed to list product statuses from API")
		return nil, err
	}

	products := make([]*domain.DisapprovedProduct, 0)
	for _, status := range statuses {
		if !status.IsDisapproved() {
			continue
		}

		reasons := make([]string, 0, len(status.ItemLevelIssues))
		for _, issue := range status.ItemLevelIssues {
			reasons = append(reasons, issue.Description)
		}

		products = append(products, &domain.DisapprovedProduct{
			ProductID: status.ProductID,
			Title:     status.Title,
			Issues:    reasons,
		})
	}

	logrus.WithFields(logrus.Fields{
		"total_statuses": len(statuses),
		"disapproved":    len(products),
	}).Debug("merchant: successfully retrieved disapproved products")

	return products, nil
}

func (s *MerchantCenterIntegrator) GetFeedHealth(ctx context.Context) (*domain.FeedHealth, error) {
	statuses, err := s.Client.ListProductStatuses(maxProductStatuses)
	if err != nil {
		logrus.WithError(err).Error("merchant: failed to list product statuses from API")
		return nil, err
	}

	health := &domain.FeedHealth{TotalProducts: len(statuses)}

	for _, status := range statuses {
		switch {
		case status.IsDisapproved():
			health.DisapprovedProducts++
		case status.IsPending():
			health.PendingProducts++
		default:
			health.ApprovedProducts++
		}
	}

	if health.TotalProducts > 0 {
		health.ApprovalRate = utils.RoundWithTwoDecimalPlace(
			float64(health.ApprovedProducts) / float64(health.TotalProducts) * 100,
		)
	}

	return health, nil
}
