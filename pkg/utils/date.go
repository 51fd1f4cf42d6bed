package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// MonthStart retorna o primeiro dia do mês da data, à meia-noite
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// MonthEnd retorna o último dia do mês da data, à meia-noite
func MonthEnd(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month()+1, 1, 0, 0, 0, 0, date.Location()).AddDate(0, 0, -1)
}

// NextMonth retorna o primeiro dia do mês seguinte
func NextMonth(date time.Time) time.Time {
	return MonthStart(date).AddDate(0, 1, 0)
}

// PreviousMonthEnd retorna o último dia do mês anterior à data. É o limite
// superior das cargas mensais: o mês corrente nunca entra no rollup
func PreviousMonthEnd(date time.Time) time.Time {
	return MonthStart(date).AddDate(0, 0, -1)
}

// SameMonth indica se as duas datas caem no mesmo mês calendário
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
