package response_models

import "github.com/shopspring/decimal"

// UserStatsResponse is the full statistics report for one user, aggregated
// over every trip they participate in.
type UserStatsResponse struct {
	TotalTrips        int64 `json:"total_trips"`
	CompletedTrips    int64 `json:"completed_trips"`
	PlanningTrips     int64 `json:"planning_trips"`
	ActiveTrips       int64 `json:"active_trips"`
	TotalDaysTraveled int64 `json:"total_days_traveled"`

	TotalSpent          decimal.Decimal `json:"total_spent"`
	AverageSpentPerTrip decimal.Decimal `json:"average_spent_per_trip"`
	MostExpensiveTrip   *TripExpense    `json:"most_expensive_trip,omitempty"`

	MostTraveledLocation      string `json:"most_traveled_location,omitempty"`
	MostTraveledLocationCount int64  `json:"most_traveled_location_count,omitempty"`

	MonthlyTrips    []MonthlyTripStats    `json:"monthly_trips"`
	MonthlyExpenses []MonthlyExpenseStats `json:"monthly_expenses"`

	TopExpensiveTrips []TripExpense `json:"top_expensive_trips"`

	TotalParticipants int64 `json:"total_participants"`

	ExpensesByCurrency []CurrencyExpenseStats `json:"expenses_by_currency"`
	CountriesVisited   []CountryVisitStats    `json:"countries_visited"`
	TipStats           TipStats               `json:"tip_stats"`
	YearlyExpenses     []YearlyExpenseStats   `json:"yearly_expenses"`
	TripDurationStats  TripDurationStats      `json:"trip_duration_stats"`

	TransportModeStats         []TransportModeStats           `json:"transport_mode_stats"`
	GeneralVsIndividualExpense GeneralVsIndividualExpenseStat `json:"general_vs_individual_expenses"`
	TopDestinations            []DestinationVisitStats        `json:"top_destinations"`
	TemporalExpenses           []TemporalExpenseStats         `json:"temporal_expenses"`
}

type TripExpense struct {
	TripID       string          `json:"trip_id"`
	TripName     string          `json:"trip_name"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Currency     string          `json:"currency"`
}

type MonthlyTripStats struct {
	Month     string `json:"month"`      // "2024-01"
	MonthName string `json:"month_name"` // "Enero 2024"
	TripCount int64  `json:"trip_count"`
}

type MonthlyExpenseStats struct {
	Month        string          `json:"month"`
	MonthName    string          `json:"month_name"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Currency     string          `json:"currency"`
}

type CurrencyExpenseStats struct {
	Currency       string          `json:"currency"`        // PESOS, DOLARES, EUROS
	CurrencyCode   string          `json:"currency_code"`   // ARS, USD, EUR
	CurrencySymbol string          `json:"currency_symbol"` // $, US$, €
	TotalExpense   decimal.Decimal `json:"total_expense"`
	PurchaseCount  int64           `json:"purchase_count"`
}

type CountryVisitStats struct {
	Country    string `json:"country"`
	VisitCount int64  `json:"visit_count"`
}

type TipStats struct {
	TotalTips           int64             `json:"total_tips"`
	DistributionByType  []TipTypeStats    `json:"distribution_by_type"`
	AverageRating       float64           `json:"average_rating"`
	AverageRatingByType []TipRatingByType `json:"average_rating_by_type"`
}

type TipTypeStats struct {
	TipType string `json:"tip_type"`
	TipIcon string `json:"tip_icon"`
	Count   int64  `json:"count"`
}

type TipRatingByType struct {
	TipType       string  `json:"tip_type"`
	TipIcon       string  `json:"tip_icon"`
	AverageRating float64 `json:"average_rating"`
	Count         int64   `json:"count"`
}

type YearlyExpenseStats struct {
	Year         string          `json:"year"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Currency     string          `json:"currency"`
	TripCount    int64           `json:"trip_count"`
}

type TripDurationStats struct {
	AverageDurationDays float64              `json:"average_duration_days"`
	ShortestTripDays    int64                `json:"shortest_trip_days"`
	LongestTripDays     int64                `json:"longest_trip_days"`
	DistributionByRange []DurationRangeStats `json:"distribution_by_range"`
}

type DurationRangeStats struct {
	Range     string `json:"range"` // "1-3 days", "4-7 days", "8-14 days", "15+ days"
	TripCount int64  `json:"trip_count"`
}

type TransportModeStats struct {
	TransportMode string `json:"transport_mode"`
	TripCount     int64  `json:"trip_count"`
}

type GeneralVsIndividualExpenseStat struct {
	GeneralExpenses         decimal.Decimal `json:"general_expenses"`
	IndividualExpenses      decimal.Decimal `json:"individual_expenses"`
	GeneralPurchaseCount    int64           `json:"general_purchase_count"`
	IndividualPurchaseCount int64           `json:"individual_purchase_count"`
	Currency                string          `json:"currency"`
}

type DestinationVisitStats struct {
	DestinationName string `json:"destination_name"`
	Country         string `json:"country,omitempty"`
	VisitCount      int64  `json:"visit_count"`
}

type TemporalExpenseStats struct {
	Period        string          `json:"period"`      // "2024-01"
	PeriodName    string          `json:"period_name"` // "Enero 2024"
	TotalExpense  decimal.Decimal `json:"total_expense"`
	Currency      string          `json:"currency"`
	PurchaseCount int64           `json:"purchase_count"`
}
