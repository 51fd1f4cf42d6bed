package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthStart(t *testing.T) {
	date := time.Date(2024, 3, 17, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), MonthStart(date))
}

func TestMonthEnd(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected time.Time
	}{
		{
			name:     "mês de 31 dias",
			date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "fevereiro em ano bissexto",
			date:     time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "fevereiro em ano comum",
			date:     time.Date(2023, 2, 5, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "dezembro vira o ano",
			date:     time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthEnd(tt.date))
		})
	}
}

func TestNextMonth(t *testing.T) {
	assert.Equal(t,
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		NextMonth(time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC)),
	)

	// Dezembro avança para janeiro do ano seguinte
	assert.Equal(t,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		NextMonth(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
	)
}

func TestPreviousMonthEnd(t *testing.T) {
	// O limite superior das cargas mensais: o mês corrente nunca entra
	assert.Equal(t,
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		PreviousMonthEnd(time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)),
	)

	// Janeiro volta para dezembro do ano anterior
	assert.Equal(t,
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		PreviousMonthEnd(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	)
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	assert.True(t, SameMonth(a, b))

	// Mesmo mês de anos diferentes não conta
	c := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.False(t, SameMonth(a, c))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-17")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("17/03/2024")
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 8.46, RoundWithTwoDecimalPlace(8.456))
	assert.Equal(t, 8.45, RoundWithTwoDecimalPlace(8.454))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
