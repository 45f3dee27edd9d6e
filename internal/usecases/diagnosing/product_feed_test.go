package diagnosing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-diagnostics-api/internal/domain"
)

func TestAnalyzeProductFeed(t *testing.T) {
	tests := []struct {
		name     string
		products []*domain.DisapprovedProduct
		validate func(t *testing.T, findings []domain.Finding)
	}{
		{
			name: "Produto reprovado com motivo - descrição deve narrar o primeiro motivo",
			products: []*domain.DisapprovedProduct{
				{
					ProductID: "5521",
					Title:     "Premium Wireless Headphones",
					Issues:    []string{"Invalid GTIN", "Missing image"},
				},
			},
			validate: func(t *testing.T, findings []domain.Finding) {
				assert.Len(t, findings, 1)
				assert.Equal(t, domain.IssueDisapprovedProduct, findings[0].Issue.Type)
				assert.Equal(t, domain.SeverityHigh, findings[0].Issue.Severity)
				assert.Equal(t, "Product 'Premium Wireless Headphones' (ID: 5521) is disapproved: Invalid GTIN", findings[0].Issue.Description)
				assert.Equal(t, []string{"Invalid GTIN", "Missing image"}, findings[0].Issue.Metadata["issues"])
				assert.Equal(t, domain.ActionFixProductFeed, findings[0].Action.ActionType)
				assert.Equal(t, domain.SeverityHigh, findings[0].Action.Priority)
			},
		},
		{
			name: "Produto reprovado sem motivos - descrição não deve ter sufixo",
			products: []*domain.DisapprovedProduct{
				{ProductID: "7001", Title: "USB Cable", Issues: []string{}},
			},
			validate: func(t *testing.T, findings []domain.Finding) {
				assert.Len(t, findings, 1)
				assert.Equal(t, "Product 'USB Cable' (ID: 7001) is disapproved", findings[0].Issue.Description)
			},
		},
		{
			name:     "Lista vazia - deve retornar slice vazio, não nil",
			products: []*domain.DisapprovedProduct{},
			validate: func(t *testing.T, findings []domain.Finding) {
				assert.NotNil(t, findings)
				assert.Empty(t, findings)
			},
		},
		{
			name: "Truncamento estável - apenas os primeiros 10 produtos entram no relatório",
			products: func() []*domain.DisapprovedProduct {
				products := make([]*domain.DisapprovedProduct, 0, 12)
				for i := 0; i < 12; i++ {
					products = append(products, &domain.DisapprovedProduct{
						ProductID: fmt.Sprintf("%d", i),
						Title:     fmt.Sprintf("Product %d", i),
					})
				}
				return products
			}(),
			validate: func(t *testing.T, findings []domain.Finding) {
				assert.Len(t, findings, 10)
				assert.Equal(t, "0", findings[0].Issue.Metadata["product_id"])
				assert.Equal(t, "9", findings[9].Issue.Metadata["product_id"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := AnalyzeProductFeed(tt.products)
			tt.validate(t, findings)
		})
	}
}
