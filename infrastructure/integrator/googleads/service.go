package googleads

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-diagnostics-api/internal/config"
	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
	"github.com/vfg2006/ads-diagnostics-api/pkg/utils"
)

// AdsIntegrator define a interface do provedor de métricas de anúncios
type AdsIntegrator interface {
	// GetAccountKPIs obtém os KPIs agregados da conta para o período
	GetAccountKPIs(ctx context.Context, customerID string, dateRange string) (*domain.AccountKPIs, error)

	// GetCampaignKPIs obtém as métricas por campanha para o período
	GetCampaignKPIs(ctx context.Context, customerID string, dateRange string) ([]*domain.CampaignKPI, error)

	// GetSearchTerms obtém os termos de pesquisa com gasto mínimo no período
	GetSearchTerms(ctx context.Context, customerID string, dateRange string, minSpend float64) ([]*domain.SearchTermData, error)

	// GetPolicyIssues obtém os anúncios limitados ou reprovados por política
	GetPolicyIssues(ctx context.Context, customerID string) ([]domain.PolicyIssue, error)
}

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GoogleAdsIntegrator) GetAccountKPIs(ctx context.Context, customerID string, dateRange string) (*domain.AccountKPIs, error) {
	query := fmt.Sprintf(`
		SELECT customer.currency_code, metrics.cost_micros, metrics.conversions, metrics.conversions_value
		FROM customer
		WHERE segments.date DURING %s`, utils.DateRangeCondition(dateRange))

	rows, err := s.Client.Search(customerID, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("ads: failed to get account KPIs from API")
		return nil, err
	}

	kpis := &domain.AccountKPIs{}

	var totalValue float64
	for _, row := range rows {
		if row.Customer != nil && row.Customer.CurrencyCode != "" {
			kpis.Currency = row.Customer.CurrencyCode
		}
		if row.Metrics == nil {
			continue
		}

		kpis.TotalSpend += utils.MicrosToCurrency(parseInt64(row.Metrics.CostMicros))
		kpis.TotalConversions += row.Metrics.Conversions
		totalValue += row.Metrics.ConversionsValue
	}

	// CPA médio e ROAS ficam indefinidos quando não há base de cálculo
	if kpis.TotalConversions > 0 {
		avgCPA := utils.RoundWithTwoDecimalPlace(kpis.TotalSpend / kpis.TotalConversions)
		kpis.AverageCPA = &avgCPA
	}
	if kpis.TotalSpend > 0 && totalValue > 0 {
		roas := utils.RoundWithTwoDecimalPlace(totalValue / kpis.TotalSpend)
		kpis.ROAS = &roas
	}

	logrus.WithFields(logrus.Fields{
		"customer_id":       customerID,
		"total_spend":       kpis.TotalSpend,
		"total_conversions": kpis.TotalConversions,
	}).Debug("ads: successfully retrieved account KPIs")

	return kpis, nil
}

func (s *GoogleAdsIntegrator) GetCampaignKPIs(ctx context.Context, customerID string, dateRange string) ([]*domain.CampaignKPI, error) {
	query := fmt.Sprintf(`
		SELECT campaign.id, campaign.name, metrics.cost_micros, metrics.conversions
		FROM campaign
		WHERE segments.date DURING %s AND campaign.status = 'ENABLED'
		ORDER BY metrics.cost_micros DESC`, utils.DateRangeCondition(dateRange))

	rows, err := s.Client.Search(customerID, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("ads: failed to get campaign KPIs from API")
		return nil, err
	}

	campaigns := make([]*domain.CampaignKPI, 0, len(rows))
	for _, row := range rows {
		if row.Campaign == nil || row.Metrics == nil {
			continue
		}

		kpi := &domain.CampaignKPI{
			CampaignID:   row.Campaign.ID,
			CampaignName: row.Campaign.Name,
			Spend:        utils.MicrosToCurrency(parseInt64(row.Metrics.CostMicros)),
			Conversions:  row.Metrics.Conversions,
		}

		if kpi.Conversions > 0 {
			cpa := utils.RoundWithTwoDecimalPlace(kpi.Spend / kpi.Conversions)
			kpi.CPA = &cpa
		}

		campaigns = append(campaigns, kpi)
	}

	return campaigns, nil
}

func (s *GoogleAdsIntegrator) GetSearchTerms(ctx context.Context, customerID string, dateRange string, minSpend float64) ([]*domain.SearchTermData, error) {
	query := fmt.Sprintf(`
		SELECT search_term_view.search_term, metrics.cost_micros, metrics.clicks, metrics.conversions
		FROM search_term_view
		WHERE segments.date DURING %s AND metrics.cost_micros > %d
		ORDER BY metrics.cost_micros DESC`,
		utils.DateRangeCondition(dateRange), int64(minSpend*1_000_000))

	rows, err := s.Client.Search(customerID, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("ads: failed to get search terms from API")
		return nil, err
	}

	terms := make([]*domain.SearchTermData, 0, len(rows))
	for _, row := range rows {
		if row.SearchTermView == nil || row.Metrics == nil {
			continue
		}

		clicks := int(parseInt64(row.Metrics.Clicks))

		term := &domain.SearchTermData{
			SearchTerm:  row.SearchTermView.SearchTerm,
			Cost:        utils.MicrosToCurrency(parseInt64(row.Metrics.CostMicros)),
			Clicks:      clicks,
			Conversions: row.Metrics.Conversions,
		}

		// Taxa de conversão percentual, indefinida sem cliques
		if clicks > 0 {
			rate := utils.RoundWithTwoDecimalPlace(row.Metrics.Conversions / float64(clicks) * 100)
			term.ConversionRate = &rate
		}

		terms = append(terms, term)
	}

	return terms, nil
}

func (s *GoogleAdsIntegrator) GetPolicyIssues(ctx context.Context, customerID string) ([]domain.PolicyIssue, error) {
	query := `
		SELECT ad_group_ad.ad.id, ad_group_ad.ad.name, campaign.name,
			ad_group_ad.policy_summary.approval_status, ad_group_ad.policy_summary.review_status
		FROM ad_group_ad
		WHERE ad_group_ad.policy_summary.approval_status != 'APPROVED'`

	rows, err := s.Client.Search(customerID, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("ads: failed to get policy issues from API")
		return nil, err
	}

	policyIssues := make([]domain.PolicyIssue, 0, len(rows))
	for _, row := range rows {
		// Linhas incompletas são descartadas aqui: o detector de política
		// assume as três chaves obrigatórias presentes.
		if row.AdGroupAd == nil || row.AdGroupAd.Ad == nil || row.AdGroupAd.PolicySummary == nil || row.Campaign == nil {
			continue
		}

		policyIssues = append(policyIssues, domain.PolicyIssue{
			"ad_id":           row.AdGroupAd.Ad.ID,
			"ad_name":         row.AdGroupAd.Ad.Name,
			"campaign_name":   row.Campaign.Name,
			"approval_status": row.AdGroupAd.PolicySummary.ApprovalStatus,
			"review_status":   row.AdGroupAd.PolicySummary.ReviewStatus,
		})
	}

	return policyIssues, nil
}

// parseInt64 converte os inteiros transportados como string pelo REST.
// Valor ilegível conta como zero — a linha ainda participa do relatório.
func parseInt64(raw string) int64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"value": raw,
			"error": err.Error(),
		}).Warn("ads: error converting metric value to int64")
		return 0
	}

	return value
}
