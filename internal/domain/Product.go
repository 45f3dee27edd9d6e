package domain

// DisapprovedProduct representa um produto reprovado no feed do Merchant
// Center. Issues preserva todos os motivos de reprovação na ordem reportada.
type DisapprovedProduct struct {
	ProductID string   `json:"product_id"`
	Title     string   `json:"title"`
	Issues    []string `json:"issues"`
}

// FeedHealth resume o estado de aprovação do feed de produtos
type FeedHealth struct {
	TotalProducts       int     `json:"total_products"`
	ApprovedProducts    int     `json:"approved_products"`
	DisapprovedProducts int     `json:"disapproved_products"`
	PendingProducts     int     `json:"pending_products"`
	ApprovalRate        float64 `json:"approval_rate"`
}
