package utils

import (
	"fmt"
	"time"
)

var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthKey formats a date as "2006-01", the sortable bucket key used by the
// monthly and temporal expense series.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

func YearKey(t time.Time) string {
	return t.Format("2006")
}

// MonthDisplayName renders a month key as "Enero 2024". Falls back to the key
// itself when it does not parse.
func MonthDisplayName(monthKey string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey
	}
	return fmt.Sprintf("%s %d", spanishMonths[t.Month()-1], t.Year())
}
