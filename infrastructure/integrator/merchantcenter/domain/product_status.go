package domain

// Tipos brutos da resposta de productstatuses do Content API

type ProductStatusesResponse struct {
	Resources     []ProductStatus `json:"resources"`
	NextPageToken string          `json:"nextPageToken"`
}

type ProductStatus struct {
	ProductID           string              `json:"productId"`
	Title               string              `json:"title"`
	DestinationStatuses []DestinationStatus `json:"destinationStatuses"`
	ItemLevelIssues     []ItemLevelIssue    `json:"itemLevelIssues"`
}

type DestinationStatus struct {
	Destination string `json:"destination"`
	Status      string `json:"status"`
}

type ItemLevelIssue struct {
	Code        string `json:"code"`
	Severity    string `json:"servability"`
	Description string `json:"description"`
}

// Status de destino reportados pelo Merchant Center
const (
	StatusApproved    = "approved"
	StatusDisapproved = "disapproved"
	StatusPending     = "pending"
)

// IsDisapproved indica se o produto está reprovado em algum destino
func (p ProductStatus) IsDisapproved() bool {
	for _, destination := range p.DestinationStatuses {
		if destination.Status == StatusDisapproved {
			return true
		}
	}
	return false
}

// IsPending indica se o produto está pendente de revisão em algum destino
func (p ProductStatus) IsPending() bool {
	for _, destination := range p.DestinationStatuses {
		if destination.Status == StatusPending {
			return true
		}
	}
	return false
}
