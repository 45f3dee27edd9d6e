package domain

// Tipos brutos da resposta de googleAds:search. Campos int64 chegam como
// string no transporte REST da API e são convertidos no integrador.

type SearchResponse struct {
	Results       []Row  `json:"results"`
	NextPageToken string `json:"nextPageToken"`
}

type Row struct {
	Customer       *Customer       `json:"customer,omitempty"`
	Campaign       *Campaign       `json:"campaign,omitempty"`
	Metrics        *Metrics        `json:"metrics,omitempty"`
	SearchTermView *SearchTermView `json:"searchTermView,omitempty"`
	AdGroupAd      *AdGroupAd      `json:"adGroupAd,omitempty"`
}

type Customer struct {
	ID           string `json:"id"`
	CurrencyCode string `json:"currencyCode"`
}

type Campaign struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Metrics struct {
	CostMicros       string  `json:"costMicros"`
	Clicks           string  `json:"clicks"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

type SearchTermView struct {
	SearchTerm string `json:"searchTerm"`
}

type AdGroupAd struct {
	Ad            *Ad            `json:"ad"`
	PolicySummary *PolicySummary `json:"policySummary"`
}

type Ad struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PolicySummary struct {
	ApprovalStatus string `json:"approvalStatus"`
	ReviewStatus   string `json:"reviewStatus"`
}
