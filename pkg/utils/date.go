package utils

// Tokens de período aceitos pela API. Um token desconhecido cai no período
// padrão de 7 dias em vez de gerar erro.
const DefaultDateRange = "7d"

var gaqlDateRanges = map[string]string{
	"7d":  "LAST_7_DAYS",
	"30d": "LAST_30_DAYS",
	"90d": "LAST_90_DAYS",
}

// DateRangeCondition traduz o token de período ("7d", "30d") para a cláusula
// DURING correspondente da GAQL.
func DateRangeCondition(dateRange string) string {
	if clause, ok := gaqlDateRanges[dateRange]; ok {
		return clause
	}

	return gaqlDateRanges[DefaultDateRange]
}

// IsValidDateRange indica se o token de período é reconhecido
func IsValidDateRange(dateRange string) bool {
	_, ok := gaqlDateRanges[dateRange]
	return ok
}
