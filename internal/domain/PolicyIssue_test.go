package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyIssueStringField(t *testing.T) {
	record := PolicyIssue{
		"ad_name":         "Summer Sale Ad",
		"campaign_name":   "Search - Promo",
		"approval_status": "DISAPPROVED",
		"ad_id":           12345,
	}

	value, err := record.StringField(PolicyKeyAdName)
	assert.NoError(t, err)
	assert.Equal(t, "Summer Sale Ad", value)

	_, err = record.StringField("missing_key")
	assert.Error(t, err)

	_, err = record.StringField("ad_id")
	assert.Error(t, err)
}

func TestPolicyIssueClone(t *testing.T) {
	record := PolicyIssue{
		"ad_name":         "Summer Sale Ad",
		"approval_status": "LIMITED",
	}

	clone := record.Clone()
	clone["ad_name"] = "mutated"

	assert.Equal(t, "Summer Sale Ad", record["ad_name"])
	assert.Equal(t, "mutated", clone["ad_name"])
}

func TestSeverityRank(t *testing.T) {
	assert.Equal(t, 0, SeverityRank(SeverityHigh))
	assert.Equal(t, 1, SeverityRank(SeverityMedium))
	assert.Equal(t, 2, SeverityRank(SeverityLow))

	// Tokens desconhecidos ordenam por último, sem erro
	assert.Equal(t, 3, SeverityRank("critical"))
	assert.Equal(t, 3, SeverityRank(""))
}
