package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestReferralEmailIndexSkipsPhoneOnly(t *testing.T) {
	s, err := schema.Parse(&Referral{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	var found *schema.Index
	for _, idx := range s.ParseIndexes() {
		if idx.Name == "idx_referrals_referrer_email" {
			found = idx
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "UNIQUE", found.Class)
	assert.Equal(t, "referred_email <> ''", found.Where)

	var columns []string
	for _, f := range found.Fields {
		columns = append(columns, f.DBName)
	}
	assert.ElementsMatch(t, []string{"referrer_id", "referred_email"}, columns)
}
