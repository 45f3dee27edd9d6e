package merchantcenter

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	mcdomain "github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/merchantcenter/domain"
	"github.com/vfg2006/ads-diagnostics-api/internal/config"
)

type stubClient struct {
	statuses []mcdomain.ProductStatus
	err      error
}

func (c *stubClient) ListProductStatuses(maxResults int) ([]mcdomain.ProductStatus, error) {
	return c.statuses, c.err
}

func TestGetDisapprovedProducts(t *testing.T) {
	client := &stubClient{
		statuses: []mcdomain.ProductStatus{
			{
				ProductID: "5521",
				Title:     "Premium Wireless Headphones",
				DestinationStatuses: []mcdomain.DestinationStatus{
					{Destination: "Shopping", Status: mcdomain.StatusDisapproved},
				},
				ItemLevelIssues: []mcdomain.ItemLevelIssue{
					{Code: "invalid_gtin", Description: "Invalid GTIN"},
					{Code: "image_too_small", Description: "Image too small"},
				},
			},
			{
				ProductID: "5522",
				Title:     "USB Cable",
				DestinationStatuses: []mcdomain.DestinationStatus{
					{Destination: "Shopping", Status: mcdomain.StatusApproved},
				},
			},
		},
	}

	integrator := New(&config.Config{}, client)

	products, err := integrator.GetDisapprovedProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "5521", products[0].ProductID)
	assert.Equal(t, "Premium Wireless Headphones", products[0].Title)
	assert.Equal(t, []string{"Invalid GTIN", "Image too small"}, products[0].Issues)
}

func TestGetDisapprovedProducts_PropagatesClientError(t *testing.T) {
	client := &stubClient{err: errors.New("merchant center falhou com status 403")}

	integrator := New(&config.Config{}, client)

	products, err := integrator.GetDisapprovedProducts(context.Background())

	assert.Error(t, err)
	assert.Nil(t, products)
}

func TestGetFeedHealth(t *testing.T) {
	disapproved := mcdomain.DestinationStatus{Destination: "Shopping", Status: mcdomain.StatusDisapproved}
	approved := mcdomain.DestinationStatus{Destination: "Shopping", Status: mcdomain.StatusApproved}
	pending := mcdomain.DestinationStatus{Destination: "Shopping", Status: mcdomain.StatusPending}

	client := &stubClient{
		statuses: []mcdomain.ProductStatus{
			{ProductID: "1", DestinationStatuses: []mcdomain.DestinationStatus{approved}},
			{ProductID: "2", DestinationStatuses: []mcdomain.DestinationStatus{approved}},
			{ProductID: "3", DestinationStatuses: []mcdomain.DestinationStatus{disapproved}},
			{ProductID: "4", DestinationStatuses: []mcdomain.DestinationStatus{pending}},
		},
	}

	integrator := New(&config.Config{}, client)

	health, err := integrator.GetFeedHealth(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 4, health.TotalProducts)
	assert.Equal(t, 2, health.ApprovedProducts)
	assert.Equal(t, 1, health.DisapprovedProducts)
	assert.Equal(t, 1, health.PendingProducts)
	assert.Equal(t, 50.0, health.ApprovalRate)
}

func TestGetFeedHealth_EmptyFeed(t *testing.T) {
	client := &stubClient{statuses: []mcdomain.ProductStatus{}}

	integrator := New(&config.Config{}, client)

	health, err := integrator.GetFeedHealth(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, health.TotalProducts)
	assert.Equal(t, 0.0, health.ApprovalRate)
}
