package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateRangeCondition(t *testing.T) {
	assert.Equal(t, "LAST_7_DAYS", DateRangeCondition("7d"))
	assert.Equal(t, "LAST_30_DAYS", DateRangeCondition("30d"))
	assert.Equal(t, "LAST_90_DAYS", DateRangeCondition("90d"))

	// Token desconhecido cai no período padrão
	assert.Equal(t, "LAST_7_DAYS", DateRangeCondition("365d"))
	assert.Equal(t, "LAST_7_DAYS", DateRangeCondition(""))
}

func TestIsValidDateRange(t *testing.T) {
	assert.True(t, IsValidDateRange("7d"))
	assert.True(t, IsValidDateRange("30d"))
	assert.True(t, IsValidDateRange("90d"))

	assert.False(t, IsValidDateRange("365d"))
	assert.False(t, IsValidDateRange(""))
	assert.False(t, IsValidDateRange("7D"))
}
