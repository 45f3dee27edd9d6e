package snapshotting

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	adsmocks "github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/googleads/mocks"
	merchantmocks "github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/merchantcenter/mocks"
	repomocks "github.com/vfg2006/ads-diagnostics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-diagnostics-api/internal/config"
	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func demoConfig() *config.Config {
	return &config.Config{
		GoogleAds: config.GoogleAds{DeveloperToken: ""},
	}
}

func liveConfig() *config.Config {
	return &config.Config{
		GoogleAds: config.GoogleAds{DeveloperToken: "dev-token"},
	}
}

func TestBuildSnapshot_DemoMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa configurada: em modo demo os provedores nunca são
	// invocados
	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockMerchant := merchantmocks.NewMockMerchantIntegrator(ctrl)

	service := NewService(demoConfig(), mockAds, mockMerchant)

	snapshot := service.BuildSnapshot(context.Background(), "1234567890", "30d")

	assert.NotNil(t, snapshot.Summary)
	assert.Equal(t, "30d", snapshot.Summary.DateRange)
	assert.Equal(t, 1250.50, snapshot.Summary.TotalSpend)
	assert.Equal(t, 45.0, snapshot.Summary.TotalConversions)
	assert.Equal(t, "USD", snapshot.Summary.Currency)

	assert.Len(t, snapshot.TopIssues, 3)
	assert.Equal(t, domain.IssueDisapprovedProduct, snapshot.TopIssues[0].Type)
	assert.Equal(t, domain.IssueZeroConversionCampaign, snapshot.TopIssues[1].Type)
	assert.Equal(t, domain.IssueWastefulSearchTerm, snapshot.TopIssues[2].Type)

	assert.Len(t, snapshot.RecommendedActions, 3)
	assert.Equal(t, domain.ActionFixProductFeed, snapshot.RecommendedActions[0].ActionType)
}

func TestBuildSnapshot_DemoModeUsesDefaultDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockMerchant := merchantmocks.NewMockMerchantIntegrator(ctrl)

	service := NewService(demoConfig(), mockAds, mockMerchant)

	snapshot := service.BuildSnapshot(context.Background(), "1234567890", "")

	assert.Equal(t, DefaultDateRange, snapshot.Summary.DateRange)
}

func TestBuildSnapshot_LivePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockMerchant := merchantmocks.NewMockMerchantIntegrator(ctrl)

	avgCPA := 25.0
	roas := 4.1

	mockAds.EXPECT().
		GetAccountKPIs(gomock.Any(), "1234567890", "7d").
		Return(&domain.AccountKPIs{
			TotalSpend:       2000.0,
			TotalConversions: 80.0,
			AverageCPA:       &avgCPA,
			ROAS:             &roas,
			Currency:         "BRL",
		}, nil)

	mockAds.EXPECT().
		GetCampaignKPIs(gomock.Any(), "1234567890", "7d").
		Return([]*domain.CampaignKPI{
			{CampaignID: "111", CampaignName: "Display - Retargeting", Spend: 150.0, Conversions: 0},
		}, nil)

	mockAds.EXPECT().
		GetSearchTerms(gomock.Any(), "1234567890", "7d", searchTermMinSpend).
		Return([]*domain.SearchTermData{
			{SearchTerm: "free headphones", Cost: 45.20, Clicks: 32, Conversions: 0},
		}, nil)

	mockAds.EXPECT().
		GetPolicyIssues(gomock.Any(), "1234567890").
		Return([]domain.PolicyIssue{}, nil)

	mockMerchant.EXPECT().
		GetDisapprovedProducts(gomock.Any()).
		Return([]*domain.DisapprovedProduct{
			{ProductID: "5521", Title: "Premium Wireless Headphones", Issues: []string{"Invalid GTIN"}},
		}, nil)

	service := NewService(liveConfig(), mockAds, mockMerchant)

	snapshot := service.BuildSnapshot(context.Background(), "1234567890", "7d")

	assert.Equal(t, 2000.0, snapshot.Summary.TotalSpend)
	assert.Equal(t, "BRL", snapshot.Summary.Currency)
	assert.Equal(t, &avgCPA, snapshot.Summary.AverageCPA)

	assert.Len(t, snapshot.TopIssues, 3)
	assert.Equal(t, domain.IssueDisapprovedProduct, snapshot.TopIssues[0].Type)
	assert.Equal(t, domain.IssueZeroConversionCampaign, snapshot.TopIssues[1].Type)
	assert.Equal(t, domain.IssueWastefulSearchTerm, snapshot.TopIssues[2].Type)
}

func TestBuildSnapshot_ProviderErrorFallsBackToDemo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockMerchant := merchantmocks.NewMockMerchantIntegrator(ctrl)

	mockAds.EXPECT().
		GetAccountKPIs(gomock.Any(), "1234567890", "7d").
		Return(nil, errors.New("google ads search falhou com status 403"))

	service := NewService(liveConfig(), mockAds, mockMerchant)

	snapshot := service.BuildSnapshot(context.Background(), "1234567890", "7d")

	// Contrato de nunca-falhar: a falha do provedor vira o relatório demo
	assert.Equal(t, 1250.50, snapshot.Summary.TotalSpend)
	assert.Equal(t, "USD", snapshot.Summary.Currency)
	assert.Len(t, snapshot.TopIssues, 3)
}

func TestBuildSnapshot_AggregationErrorFallsBackToDemo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockMerchant := merchantmocks.NewMockMerchantIntegrator(ctrl)

	mockAds.EXPECT().
		GetAccountKPIs(gomock.Any(), "1234567890", "7d").
		Return(&domain.AccountKPIs{Currency: "USD"}, nil)

	mockAds.EXPECT().
		GetCampaignKPIs(gomock.Any(), "1234567890", "7d").
		Return([]*domain.CampaignKPI{}, nil)

	mockAds.EXPECT().
		GetSearchTerms(gomock.Any(), "1234567890", "7d", searchTermMinSpend).
		Return([]*domain.SearchTermData{}, nil)

	// Registro de política sem as chaves obrigatórias derruba o agregador
	mockAds.EXPECT().
		GetPolicyIssues(gomock.Any(), "1234567890").
		Return([]domain.PolicyIssue{{"ad_id": "445566"}}, nil)

	mockMerchant.EXPECT().
		GetDisapprovedProducts(gomock.Any()).
		Return([]*domain.DisapprovedProduct{}, nil)

	service := NewService(liveConfig(), mockAds, mockMerchant)

	snapshot := service.BuildSnapshot(context.Background(), "1234567890", "7d")

	assert.Equal(t, 1250.50, snapshot.Summary.TotalSpend)
	assert.Len(t, snapshot.TopIssues, 3)
}

func TestBuildSnapshot_LivePathSavesHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockMerchant := merchantmocks.NewMockMerchantIntegrator(ctrl)
	mockRepo := repomocks.NewMockSnapshotRepository(ctrl)

	mockAds.EXPECT().
		GetAccountKPIs(gomock.Any(), "1234567890", "7d").
		Return(&domain.AccountKPIs{TotalSpend: 300.0, Currency: "USD"}, nil)
	mockAds.EXPECT().
		GetCampaignKPIs(gomock.Any(), "1234567890", "7d").
		Return([]*domain.CampaignKPI{}, nil)
	mockAds.EXPECT().
		GetSearchTerms(gomock.Any(), "1234567890", "7d", searchTermMinSpend).
		Return([]*domain.SearchTermData{}, nil)
	mockAds.EXPECT().
		GetPolicyIssues(gomock.Any(), "1234567890").
		Return([]domain.PolicyIssue{}, nil)
	mockMerchant.EXPECT().
		GetDisapprovedProducts(gomock.Any()).
		Return([]*domain.DisapprovedProduct{}, nil)

	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.SnapshotEntry) error {
			assert.NotEmpty(t, entry.ID)
			assert.Equal(t, "1234567890", entry.CustomerID)
			assert.Equal(t, "7d", entry.DateRange)
			assert.Equal(t, 300.0, entry.Snapshot.Summary.TotalSpend)
			return nil
		})

	service := NewService(liveConfig(), mockAds, mockMerchant).WithHistory(mockRepo)

	snapshot := service.BuildSnapshot(context.Background(), "1234567890", "7d")

	assert.Equal(t, 300.0, snapshot.Summary.TotalSpend)
}

func TestBuildSnapshot_HistorySaveErrorDoesNotAffectResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockMerchant := merchantmocks.NewMockMerchantIntegrator(ctrl)
	mockRepo := repomocks.NewMockSnapshotRepository(ctrl)

	mockAds.EXPECT().
		GetAccountKPIs(gomock.Any(), "1234567890", "7d").
		Return(&domain.AccountKPIs{TotalSpend: 300.0, Currency: "USD"}, nil)
	mockAds.EXPECT().
		GetCampaignKPIs(gomock.Any(), "1234567890", "7d").
		Return([]*domain.CampaignKPI{}, nil)
	mockAds.EXPECT().
		GetSearchTerms(gomock.Any(), "1234567890", "7d", searchTermMinSpend).
		Return([]*domain.SearchTermData{}, nil)
	mockAds.EXPECT().
		GetPolicyIssues(gomock.Any(), "1234567890").
		Return([]domain.PolicyIssue{}, nil)
	mockMerchant.EXPECT().
		GetDisapprovedProducts(gomock.Any()).
		Return([]*domain.DisapprovedProduct{}, nil)

	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("erro de conexão com o banco"))

	service := NewService(liveConfig(), mockAds, mockMerchant).WithHistory(mockRepo)

	snapshot := service.BuildSnapshot(context.Background(), "1234567890", "7d")

	assert.Equal(t, 300.0, snapshot.Summary.TotalSpend)
}

func TestHistory_DisabledReturnsEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockMerchant := merchantmocks.NewMockMerchantIntegrator(ctrl)

	service := NewService(demoConfig(), mockAds, mockMerchant)

	entries, err := service.History(context.Background(), "1234567890", 20)

	assert.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestHistory_DelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	mockMerchant := merchantmocks.NewMockMerchantIntegrator(ctrl)
	mockRepo := repomocks.NewMockSnapshotRepository(ctrl)

	expected := []*domain.SnapshotEntry{
		{ID: "abc123", CustomerID: "1234567890", DateRange: "7d"},
	}

	mockRepo.EXPECT().
		ListByCustomerID(gomock.Any(), "1234567890", 20).
		Return(expected, nil)

	service := NewService(demoConfig(), mockAds, mockMerchant).WithHistory(mockRepo)

	entries, err := service.History(context.Background(), "1234567890", 20)

	assert.NoError(t, err)
	assert.Equal(t, expected, entries)
}
