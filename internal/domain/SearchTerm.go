package domain

// SearchTermData representa as métricas de um termo de pesquisa.
// ConversionRate (percentual) fica nulo quando a API não a reporta.
type SearchTermData struct {
	SearchTerm     string   `json:"search_term"`
	Cost           float64  `json:"cost"`
	Clicks         int      `json:"clicks"`
	Conversions    float64  `json:"conversions"`
	ConversionRate *float64 `json:"conversion_rate"`
}
