package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func analyticsFixture(months ...MonthlyStat) *SiteAnalytics {
	initialPosition := 12.3
	keyword := &KeywordAnalytics{
		KeywordID:       "KW001",
		Keyword:         "óculos de grau",
		InitialPosition: &initialPosition,
	}
	for i := range months {
		keyword.MonthlyStats = append(keyword.MonthlyStats, &months[i])
	}

	return &SiteAnalytics{
		Root:     &KeywordAnalyticsRoot{ID: "ROOT01"},
		Keywords: []*KeywordAnalytics{keyword},
	}
}

func TestSiteAnalytics_LastDataMonth(t *testing.T) {
	t.Run("sem dados persistidos", func(t *testing.T) {
		var analytics *SiteAnalytics
		_, _, ok := analytics.LastDataMonth()
		assert.False(t, ok)

		_, _, ok = analyticsFixture().LastDataMonth()
		assert.False(t, ok)
	})

	t.Run("último mês entre anos diferentes", func(t *testing.T) {
		analytics := analyticsFixture(
			MonthlyStat{Month: 11, Year: 2023},
			MonthlyStat{Month: 12, Year: 2023},
			MonthlyStat{Month: 1, Year: 2024},
		)

		year, month, ok := analytics.LastDataMonth()
		assert.True(t, ok)
		assert.Equal(t, 2024, year)
		assert.Equal(t, time.January, month)
	})
}

func TestSiteAnalytics_HasMonth(t *testing.T) {
	analytics := analyticsFixture(
		MonthlyStat{Month: 1, Year: 2024},
		MonthlyStat{Month: 2, Year: 2024},
	)

	assert.True(t, analytics.HasMonth(2024, time.February))
	assert.False(t, analytics.HasMonth(2024, time.March))
	assert.False(t, analytics.HasMonth(2023, time.February))

	var empty *SiteAnalytics
	assert.False(t, empty.HasMonth(2024, time.January))
}

func TestSiteAnalytics_MissingInitialPosition(t *testing.T) {
	// Projeção vazia sempre precisa de posição inicial
	var analytics *SiteAnalytics
	assert.True(t, analytics.MissingInitialPosition())
	assert.True(t, (&SiteAnalytics{}).MissingInitialPosition())

	// Todas as keywords com posição registrada
	assert.False(t, analyticsFixture(MonthlyStat{Month: 1, Year: 2024}).MissingInitialPosition())

	// Uma keyword sem posição inicial basta
	withMissing := analyticsFixture(MonthlyStat{Month: 1, Year: 2024})
	withMissing.Keywords = append(withMissing.Keywords, &KeywordAnalytics{
		KeywordID: "KW002",
		Keyword:   "óculos de sol",
	})
	assert.True(t, withMissing.MissingInitialPosition())
}

func TestGoogleAccount_IsExpired(t *testing.T) {
	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		account GoogleAccount
		expired bool
	}{
		{
			name:    "sem access token",
			account: GoogleAccount{},
			expired: true,
		},
		{
			name:    "sem data de expiração",
			account: GoogleAccount{AccessToken: "tok"},
			expired: true,
		},
		{
			name: "token válido com folga",
			account: GoogleAccount{
				AccessToken: "tok",
				ExpiresAt:   now.Add(1 * time.Hour),
			},
			expired: false,
		},
		{
			name: "token dentro da margem de renovação antecipada",
			account: GoogleAccount{
				AccessToken: "tok",
				ExpiresAt:   now.Add(2 * time.Minute),
			},
			expired: true,
		},
		{
			name: "token já expirado",
			account: GoogleAccount{
				AccessToken: "tok",
				ExpiresAt:   now.Add(-1 * time.Minute),
			},
			expired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.account.IsExpired(now))
		})
	}
}
