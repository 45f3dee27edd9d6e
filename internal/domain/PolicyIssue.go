package domain

import "fmt"

// Chaves obrigatórias de um registro de política. O integrador é responsável
// por garantir a presença delas — contrato com o provedor, não validado
// defensivamente aqui.
const (
	PolicyKeyAdName         = "ad_name"
	PolicyKeyCampaignName   = "campaign_name"
	PolicyKeyApprovalStatus = "approval_status"
)

// PolicyIssue é o registro bruto de um anúncio limitado ou reprovado por
// política. Além das chaves obrigatórias o formato é livre e o registro
// inteiro é copiado para os metadados da issue gerada.
type PolicyIssue map[string]any

// StringField retorna o valor textual de uma chave obrigatória. Retorna erro
// quando a chave está ausente ou não é uma string.
func (p PolicyIssue) StringField(key string) (string, error) {
	raw, ok := p[key]
	if !ok {
		return "", fmt.Errorf("registro de política sem a chave obrigatória %q", key)
	}

	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("registro de política com valor não textual na chave %q", key)
	}

	return value, nil
}

// Clone copia o registro para que os metadados da issue não compartilhem
// o mapa com o registro de entrada.
func (p PolicyIssue) Clone() map[string]any {
	clone := make(map[string]any, len(p))
	for key, value := range p {
		clone[key] = value
	}
	return clone
}
