package adsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-diagnostics-api/internal/config"
)

// Client executa consultas GAQL contra a API REST do Google Ads
type Client interface {
	Search(customerID string, query string) ([]adsdomain.Row, error)
}

type GoogleAdsClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{},
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

// Search envia a consulta GAQL para googleAds:search e retorna as linhas do
// resultado. Paginação não é seguida — os relatórios consomem no máximo as
// primeiras dezenas de linhas.
func (c *GoogleAdsClient) Search(customerID string, query string) ([]adsdomain.Row, error) {
	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.URL, customerID)

	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar o corpo da consulta")
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.GoogleAds.AccessToken)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	if c.Cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomerID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"customer_id": customerID,
		}).Error("ads: search request rejected by the API")
		return nil, errors.Errorf("google ads search falhou com status %d: %s", resp.StatusCode, string(respBody))
	}

	var response adsdomain.SearchResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Results, nil
}
