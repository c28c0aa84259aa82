package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

type statsFixture struct {
	svc       *StatsService
	trips     *fakeTripRepo
	users     *fakeUserRepo
	purchases *fakePurchaseRepo
	tips      *fakeTipRepo
	dests     *fakeDestinationRepo
	ctx       context.Context
	user      *dbm.User
}

func newStatsFixture(t *testing.T) *statsFixture {
	t.Helper()
	trips := newFakeTripRepo()
	users := newFakeUserRepo()
	purchases := newFakePurchaseRepo()
	tips := newFakeTipRepo()
	dests := newFakeDestinationRepo()

	svc := NewStatsService(trips, users, purchases, tips, dests).(*StatsService)
	svc.now = func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	}

	f := &statsFixture{
		svc:       svc,
		trips:     trips,
		users:     users,
		purchases: purchases,
		tips:      tips,
		dests:     dests,
		ctx:       context.Background(),
	}
	f.user = &dbm.User{Name: "ana", Email: "ana@example.com"}
	require.NoError(t, users.Insert(f.ctx, f.user))
	return f
}

func (f *statsFixture) addTrip(t *testing.T, name, start, end string) *dbm.Trip {
	t.Helper()
	trip := &dbm.Trip{Name: name}
	if start != "" {
		trip.DateStart = mustDate(t, start)
		trip.DateEnd = mustDate(t, end)
	}
	require.NoError(t, f.trips.Insert(f.ctx, trip))
	require.NoError(t, f.trips.AddMembership(f.ctx, trip.ID, f.user.ID))
	return trip
}

func (f *statsFixture) addPurchase(t *testing.T, trip *dbm.Trip, scope dbm.Scope, price, currency, date string) {
	t.Helper()
	p := dbm.NewPurchase(trip.ID, scope, f.user.ID,
		"compra", decimal.RequireFromString(price), dbm.Currency(currency), mustDate(t, date))
	require.NoError(t, f.purchases.Insert(f.ctx, p))
}

func (f *statsFixture) linkDestination(t *testing.T, trip *dbm.Trip, name, mode string) {
	t.Helper()
	dest, err := f.dests.FindByName(f.ctx, name)
	require.NoError(t, err)
	if dest == nil {
		dest = &dbm.Destination{Name: name, Country: dbm.ExtractCountry(name)}
		require.NoError(t, f.dests.Insert(f.ctx, dest))
	}
	require.NoError(t, f.dests.InsertLink(f.ctx, &dbm.TripDestination{
		TripID:        trip.ID,
		DestinationID: dest.ID,
		Destination:   dest,
		TransportMode: mode,
	}))
}

func mustDate(t *testing.T, raw string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", raw)
	require.NoError(t, err)
	return d
}

func TestStatsUnknownUser(t *testing.T) {
	f := newStatsFixture(t)
	_, err := f.svc.GetUserStats(f.ctx, uuid.New())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestStatsEmptyWithoutTrips(t *testing.T) {
	f := newStatsFixture(t)

	stats, err := f.svc.GetUserStats(f.ctx, f.user.ID)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalTrips)
	assert.True(t, stats.TotalSpent.IsZero())
	assert.True(t, stats.AverageSpentPerTrip.IsZero())
	assert.Nil(t, stats.MostExpensiveTrip)
	assert.Empty(t, stats.MonthlyTrips)
	assert.Empty(t, stats.TopExpensiveTrips)
	assert.Empty(t, stats.TemporalExpenses)
}

// A member's spend on a trip is the general ledger plus their own individual
// purchases; other members' individual rows never count.
func TestStatsAttribution(t *testing.T) {
	f := newStatsFixture(t)
	other := &dbm.User{Name: "bruno", Email: "bruno@example.com"}
	require.NoError(t, f.users.Insert(f.ctx, other))

	trip := f.addTrip(t, "Mendoza", "2026-01-10", "2026-01-13")
	require.NoError(t, f.trips.AddMembership(f.ctx, trip.ID, other.ID))

	f.addPurchase(t, trip, dbm.GeneralScope(), "1000", "PESOS", "2026-01-10")
	f.addPurchase(t, trip, dbm.IndividualScope(f.user.ID), "200", "PESOS", "2026-01-11")

	otherPurchase := dbm.NewPurchase(trip.ID, dbm.IndividualScope(other.ID), other.ID,
		"ajena", decimal.RequireFromString("9999"), dbm.CurrencyPesos, mustDate(t, "2026-01-11"))
	require.NoError(t, f.purchases.Insert(f.ctx, otherPurchase))

	stats, err := f.svc.GetUserStats(f.ctx, f.user.ID)
	require.NoError(t, err)

	assert.Equal(t, "1200", stats.TotalSpent.String())
	assert.Equal(t, "1200", stats.AverageSpentPerTrip.String())
	assert.Equal(t, int64(2), stats.TotalParticipants)

	assert.Equal(t, "1000", stats.GeneralVsIndividualExpense.GeneralExpenses.String())
	assert.Equal(t, "200", stats.GeneralVsIndividualExpense.IndividualExpenses.String())
	assert.Equal(t, int64(1), stats.GeneralVsIndividualExpense.GeneralPurchaseCount)
	assert.Equal(t, int64(1), stats.GeneralVsIndividualExpense.IndividualPurchaseCount)
}

func TestStatsTripCountsAndDurations(t *testing.T) {
	f := newStatsFixture(t)
	f.addTrip(t, "Past", "2026-01-01", "2026-01-03")    // 3 days, completed
	f.addTrip(t, "Current", "2026-06-10", "2026-06-15") // 6 days, active on the pinned day
	f.addTrip(t, "Future", "2026-09-01", "2026-09-20")  // 20 days, planning
	f.addTrip(t, "Undated", "", "")                     // planning, no duration

	stats, err := f.svc.GetUserStats(f.ctx, f.user.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalTrips)
	assert.Equal(t, int64(1), stats.CompletedTrips)
	assert.Equal(t, int64(1), stats.ActiveTrips)
	assert.Equal(t, int64(2), stats.PlanningTrips)
	assert.Equal(t, int64(29), stats.TotalDaysTraveled)

	d := stats.TripDurationStats
	assert.Equal(t, int64(3), d.ShortestTripDays)
	assert.Equal(t, int64(20), d.LongestTripDays)
	assert.InDelta(t, 29.0/3.0, d.AverageDurationDays, 1e-9)

	// Empty ranges are omitted (nothing in 8-14 days).
	require.Len(t, d.DistributionByRange, 3)
	assert.Equal(t, "1-3 days", d.DistributionByRange[0].Range)
	assert.Equal(t, "4-7 days", d.DistributionByRange[1].Range)
	assert.Equal(t, "15+ days", d.DistributionByRange[2].Range)
}

func TestStatsExpensiveTripRanking(t *testing.T) {
	f := newStatsFixture(t)
	a := f.addTrip(t, "A", "2026-01-01", "2026-01-02")
	b := f.addTrip(t, "B", "2026-02-01", "2026-02-02")
	c := f.addTrip(t, "C", "2026-03-01", "2026-03-02")
	f.addTrip(t, "Zero", "2026-04-01", "2026-04-02")

	f.addPurchase(t, a, dbm.GeneralScope(), "500", "PESOS", "2026-01-01")
	f.addPurchase(t, b, dbm.GeneralScope(), "500", "PESOS", "2026-02-01")
	f.addPurchase(t, c, dbm.GeneralScope(), "900", "PESOS", "2026-03-01")

	stats, err := f.svc.GetUserStats(f.ctx, f.user.ID)
	require.NoError(t, err)

	require.NotNil(t, stats.MostExpensiveTrip)
	assert.Equal(t, "C", stats.MostExpensiveTrip.TripName)

	// Zero-spend trips are excluded; ties keep the original trip order.
	require.Len(t, stats.TopExpensiveTrips, 3)
	assert.Equal(t, "C", stats.TopExpensiveTrips[0].TripName)
	assert.Equal(t, "A", stats.TopExpensiveTrips[1].TripName)
	assert.Equal(t, "B", stats.TopExpensiveTrips[2].TripName)

	// The average spreads across every trip, including the zero-spend one.
	assert.Equal(t, "475", stats.AverageSpentPerTrip.String())
}

func TestStatsMostExpensiveTieKeepsFirstTrip(t *testing.T) {
	f := newStatsFixture(t)
	a := f.addTrip(t, "First", "2026-01-01", "2026-01-02")
	b := f.addTrip(t, "Second", "2026-02-01", "2026-02-02")
	f.addPurchase(t, a, dbm.GeneralScope(), "700", "PESOS", "2026-01-01")
	f.addPurchase(t, b, dbm.GeneralScope(), "700", "PESOS", "2026-02-01")

	stats, err := f.svc.GetUserStats(f.ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", stats.MostExpensiveTrip.TripName)
}

// Monthly expenses follow the trip's start month; the temporal series follows
// the purchase date. A pre-trip purchase lands in different buckets in each.
func TestStatsMonthlyVersusTemporalBuckets(t *testing.T) {
	f := newStatsFixture(t)
	trip := f.addTrip(t, "Mendoza", "2026-03-10", "2026-03-15")
	f.addPurchase(t, trip, dbm.GeneralScope(), "100", "PESOS", "2026-02-20") // bought ahead
	f.addPurchase(t, trip, dbm.GeneralScope(), "50", "PESOS", "2026-03-11")

	stats, err := f.svc.GetUserStats(f.ctx, f.user.ID)
	require.NoError(t, err)

	require.Len(t, stats.MonthlyExpenses, 1)
	assert.Equal(t, "2026-03", stats.MonthlyExpenses[0].Month)
	assert.Equal(t, "Marzo 2026", stats.MonthlyExpenses[0].MonthName)
	assert.Equal(t, "150", stats.MonthlyExpenses[0].TotalExpense.String())

	require.Len(t, stats.TemporalExpenses, 2)
	assert.Equal(t, "2026-02", stats.TemporalExpenses[0].Period)
	assert.Equal(t, "Febrero 2026", stats.TemporalExpenses[0].PeriodName)
	assert.Equal(t, "100", stats.TemporalExpenses[0].TotalExpense.String())
	assert.Equal(t, "2026-03", stats.TemporalExpenses[1].Period)
	assert.Equal(t, "50", stats.TemporalExpenses[1].TotalExpense.String())

	require.Len(t, stats.MonthlyTrips, 1)
	assert.Equal(t, int64(1), stats.MonthlyTrips[0].TripCount)

	require.Len(t, stats.YearlyExpenses, 1)
	assert.Equal(t, "2026", stats.YearlyExpenses[0].Year)
	assert.Equal(t, "150", stats.YearlyExpenses[0].TotalExpense.String())
	assert.Equal(t, int64(1), stats.YearlyExpenses[0].TripCount)
}

func TestStatsCurrencyDistribution(t *testing.T) {
	f := newStatsFixture(t)
	trip := f.addTrip(t, "Europa", "2026-05-01", "2026-05-10")
	f.addPurchase(t, trip, dbm.GeneralScope(), "100", "PESOS", "2026-05-01")
	f.addPurchase(t, trip, dbm.GeneralScope(), "200", "EUROS", "2026-05-02")
	f.addPurchase(t, trip, dbm.IndividualScope(f.user.ID), "300", "EUROS", "2026-05-03")

	stats, err := f.svc.GetUserStats(f.ctx, f.user.ID)
	require.NoError(t, err)

	require.Len(t, stats.ExpensesByCurrency, 2)
	assert.Equal(t, "PESOS", stats.ExpensesByCurrency[0].Currency)
	assert.Equal(t, "ARS", stats.ExpensesByCurrency[0].CurrencyCode)
	assert.Equal(t, "$", stats.ExpensesByCurrency[0].CurrencySymbol)
	assert.Equal(t, int64(1), stats.ExpensesByCurrency[0].PurchaseCount)

	assert.Equal(t, "EUROS", stats.ExpensesByCurrency[1].Currency)
	assert.Equal(t, "€", stats.ExpensesByCurrency[1].CurrencySymbol)
	assert.Equal(t, "500", stats.ExpensesByCurrency[1].TotalExpense.String())
	assert.Equal(t, int64(2), stats.ExpensesByCurrency[1].PurchaseCount)
}

// Country and destination tallies read each trip's first link only; the
// transport tally reads every link.
func TestStatsLocationsAndTransport(t *testing.T) {
	f := newStatsFixture(t)
	a := f.addTrip(t, "A", "2026-01-01", "2026-01-02")
	b := f.addTrip(t, "B", "2026-02-01", "2026-02-02")
	c := f.addTrip(t, "C", "2026-03-01", "2026-03-02")

	f.linkDestination(t, a, "Mendoza, Argentina", dbm.TransportModeCar)
	f.linkDestination(t, a, "Santiago, Chile", dbm.TransportModePlane) // second leg
	f.linkDestination(t, b, "Mendoza, Argentina", dbm.TransportModeCar)
	f.linkDestination(t, c, "Montevideo, Uruguay", dbm.TransportModePlane)

	stats, err := f.svc.GetUserStats(f.ctx, f.user.ID)
	require.NoError(t, err)

	assert.Equal(t, "Mendoza, Argentina", stats.MostTraveledLocation)
	assert.Equal(t, int64(2), stats.MostTraveledLocationCount)

	require.Len(t, stats.CountriesVisited, 2)
	assert.Equal(t, "Argentina", stats.CountriesVisited[0].Country)
	assert.Equal(t, int64(2), stats.CountriesVisited[0].VisitCount)
	assert.Equal(t, "Uruguay", stats.CountriesVisited[1].Country)

	require.Len(t, stats.TopDestinations, 2)
	assert.Equal(t, "Mendoza, Argentina", stats.TopDestinations[0].DestinationName)

	require.Len(t, stats.TransportModeStats, 2)
	assert.Equal(t, dbm.TransportModeCar, stats.TransportModeStats[0].TransportMode)
	assert.Equal(t, int64(2), stats.TransportModeStats[0].TripCount)
	assert.Equal(t, dbm.TransportModePlane, stats.TransportModeStats[1].TransportMode)
	assert.Equal(t, int64(2), stats.TransportModeStats[1].TripCount)
}

func TestStatsTips(t *testing.T) {
	f := newStatsFixture(t)
	trip := f.addTrip(t, "Mendoza", "2026-01-01", "2026-01-05")

	rate := func(v float64) *float64 { return &v }
	tips := []*dbm.Tip{
		{TripID: trip.ID, Name: "Parrilla", Address: "x", TipType: "restaurant", TipIcon: "🍽️", Rating: rate(4)},
		{TripID: trip.ID, Name: "Bodega", Address: "x", TipType: "restaurant", TipIcon: "🍽️", Rating: rate(5)},
		{TripID: trip.ID, Name: "Hostel", Address: "x", TipType: "lodging", Rating: rate(3)},
		{TripID: trip.ID, Name: "Mirador", Address: "x", TipType: "attraction"}, // unrated
	}
	for _, tip := range tips {
		require.NoError(t, f.tips.Insert(f.ctx, tip))
	}

	stats, err := f.svc.GetUserStats(f.ctx, f.user.ID)
	require.NoError(t, err)

	ts := stats.TipStats
	assert.Equal(t, int64(4), ts.TotalTips)
	assert.InDelta(t, 4.0, ts.AverageRating, 1e-9)

	require.Len(t, ts.DistributionByType, 3)
	assert.Equal(t, "restaurant", ts.DistributionByType[0].TipType)
	assert.Equal(t, int64(2), ts.DistributionByType[0].Count)
	assert.Equal(t, "📍", ts.DistributionByType[1].TipIcon) // default icon

	// Unrated types carry no rating entry.
	require.Len(t, ts.AverageRatingByType, 2)
	assert.Equal(t, "restaurant", ts.AverageRatingByType[0].TipType)
	assert.InDelta(t, 4.5, ts.AverageRatingByType[0].AverageRating, 1e-9)
	assert.Equal(t, int64(2), ts.AverageRatingByType[0].Count)
}

func TestStatsAverageRounding(t *testing.T) {
	f := newStatsFixture(t)
	a := f.addTrip(t, "A", "2026-01-01", "2026-01-02")
	f.addTrip(t, "B", "2026-02-01", "2026-02-02")
	f.addTrip(t, "C", "2026-03-01", "2026-03-02")
	f.addPurchase(t, a, dbm.GeneralScope(), "100", "PESOS", "2026-01-01")

	stats, err := f.svc.GetUserStats(f.ctx, f.user.ID)
	require.NoError(t, err)
	// 100 / 3, half-up at two decimals.
	assert.Equal(t, "33.33", stats.AverageSpentPerTrip.String())
}
