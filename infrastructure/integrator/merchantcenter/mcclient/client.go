package mcclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	mcdomain "github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/merchantcenter/domain"
	"github.com/vfg2006/ads-diagnostics-api/internal/config"
)

// Client consulta o status dos produtos no Content API do Merchant Center
type Client interface {
	ListProductStatuses(maxResults int) ([]mcdomain.ProductStatus, error)
}

type MerchantClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MerchantClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{},
	}
}

// ListProductStatuses lista o status de aprovação dos produtos do feed, na
// ordem retornada pela API
func (c *MerchantClient) ListProductStatuses(maxResults int) ([]mcdomain.ProductStatus, error) {
	params := url.Values{}
	if maxResults > 0 {
		params.Add("maxResults", fmt.Sprint(maxResults))
	}

	endpoint := fmt.Sprintf(
		"%s/%s/productstatuses?%s",
		c.Cfg.MerchantCenter.BaseURL,
		c.Cfg.MerchantCenter.MerchantID,
		params.Encode(),
	)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.MerchantCenter.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"merchant_id": c.Cfg.MerchantCenter.MerchantID,
		}).Error("merchant: product statuses request rejected by the API")
		return nil, errors.Errorf("merchant center falhou com status %d: %s", resp.StatusCode, string(body))
	}

	var response mcdomain.ProductStatusesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Resources, nil
}
