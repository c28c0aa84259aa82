package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbm "tripmate/internal/models/db_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

const defaultTipIcon = "📍"

type StatsServiceInterface interface {
	GetUserStats(ctx context.Context, userID uuid.UUID) (*resp.UserStatsResponse, error)
}

type StatsService struct {
	tripRepo        repositories.TripRepository
	userRepo        repositories.UserRepository
	purchaseRepo    repositories.PurchaseRepository
	tipRepo         repositories.TipRepository
	destinationRepo repositories.DestinationRepository
	now             func() time.Time
}

func NewStatsService(
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
	purchaseRepo repositories.PurchaseRepository,
	tipRepo repositories.TipRepository,
	destinationRepo repositories.DestinationRepository,
) StatsServiceInterface {
	return &StatsService{
		tripRepo:        tripRepo,
		userRepo:        userRepo,
		purchaseRepo:    purchaseRepo,
		tipRepo:         tipRepo,
		destinationRepo: destinationRepo,
		now:             time.Now,
	}
}

// tripStats is everything the report needs about one trip, loaded once up
// front so the aggregation passes below stay pure.
type tripStats struct {
	trip      dbm.Trip
	purchases []dbm.Purchase // general plus the user's individual rows
	links     []dbm.TripDestination
	tips      []dbm.Tip
	members   int64
}

// GetUserStats aggregates the full statistics report across every trip the
// user belongs to. A user attributes the general ledger plus their own
// individual purchases to each trip; other members' individual spend is
// never theirs.
func (s *StatsService) GetUserStats(ctx context.Context, userID uuid.UUID) (*resp.UserStatsResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	trips, err := s.tripRepo.FindByMemberUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := emptyStats()
	if len(trips) == 0 {
		return out, nil
	}

	loaded := make([]tripStats, 0, len(trips))
	for i := range trips {
		ts, err := s.loadTrip(ctx, trips[i], userID)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, ts)
	}

	today := s.now()

	s.fillTripCounts(out, loaded, today)
	s.fillSpending(out, loaded)
	s.fillLocations(out, loaded)
	s.fillMonthlyTrips(out, loaded)
	s.fillMonthlyExpenses(out, loaded)
	s.fillYearlyExpenses(out, loaded)
	s.fillCurrencyDistribution(out, loaded)
	s.fillTipStats(out, loaded)
	s.fillDurations(out, loaded)
	s.fillTransportModes(out, loaded)
	s.fillLedgerSplit(out, loaded)
	s.fillTemporalExpenses(out, loaded)

	return out, nil
}

func (s *StatsService) loadTrip(ctx context.Context, trip dbm.Trip, userID uuid.UUID) (tripStats, error) {
	general, err := s.purchaseRepo.FindGeneralByTrip(ctx, trip.ID)
	if err != nil {
		return tripStats{}, err
	}
	individual, err := s.purchaseRepo.FindIndividualByTripAndUser(ctx, trip.ID, userID)
	if err != nil {
		return tripStats{}, err
	}
	links, err := s.destinationRepo.FindLinksByTrip(ctx, trip.ID)
	if err != nil {
		return tripStats{}, err
	}
	tips, err := s.tipRepo.FindByTrip(ctx, trip.ID)
	if err != nil {
		return tripStats{}, err
	}
	members, err := s.tripRepo.CountMembers(ctx, trip.ID)
	if err != nil {
		return tripStats{}, err
	}
	return tripStats{
		trip:      trip,
		purchases: append(general, individual...),
		links:     links,
		tips:      tips,
		members:   members,
	}, nil
}

func emptyStats() *resp.UserStatsResponse {
	return &resp.UserStatsResponse{
		TotalSpent:          decimal.Zero,
		AverageSpentPerTrip: decimal.Zero,
		MonthlyTrips:        []resp.MonthlyTripStats{},
		MonthlyExpenses:     []resp.MonthlyExpenseStats{},
		TopExpensiveTrips:   []resp.TripExpense{},
		ExpensesByCurrency:  []resp.CurrencyExpenseStats{},
		CountriesVisited:    []resp.CountryVisitStats{},
		TipStats: resp.TipStats{
			DistributionByType:  []resp.TipTypeStats{},
			AverageRatingByType: []resp.TipRatingByType{},
		},
		YearlyExpenses: []resp.YearlyExpenseStats{},
		TripDurationStats: resp.TripDurationStats{
			DistributionByRange: []resp.DurationRangeStats{},
		},
		TransportModeStats: []resp.TransportModeStats{},
		GeneralVsIndividualExpense: resp.GeneralVsIndividualExpenseStat{
			GeneralExpenses:    decimal.Zero,
			IndividualExpenses: decimal.Zero,
			Currency:           dbm.CurrencyPesos.String(),
		},
		TopDestinations:  []resp.DestinationVisitStats{},
		TemporalExpenses: []resp.TemporalExpenseStats{},
	}
}

func (s *StatsService) fillTripCounts(out *resp.UserStatsResponse, loaded []tripStats, today time.Time) {
	out.TotalTrips = int64(len(loaded))
	for i := range loaded {
		switch loaded[i].trip.StatusOn(today) {
		case dbm.TripStatusCompleted:
			out.CompletedTrips++
		case dbm.TripStatusActive:
			out.ActiveTrips++
		default:
			out.PlanningTrips++
		}
		if days, ok := loaded[i].trip.DurationDays(); ok {
			out.TotalDaysTraveled += days
		}
		out.TotalParticipants += loaded[i].members
	}
}

// fillSpending computes the total, the per-trip average and the expensive
// trip rankings. The most expensive trip keeps the first trip encountered on
// a tie; the top list drops zero-spend trips and keeps the original trip
// order among equals.
func (s *StatsService) fillSpending(out *resp.UserStatsResponse, loaded []tripStats) {
	total := decimal.Zero
	expenses := make([]resp.TripExpense, 0, len(loaded))

	for i := range loaded {
		tripTotal := sumPrices(loaded[i].purchases)
		total = total.Add(tripTotal)
		expenses = append(expenses, resp.TripExpense{
			TripID:       loaded[i].trip.ID.String(),
			TripName:     loaded[i].trip.Name,
			TotalExpense: tripTotal,
			Currency:     dominantCurrency(loaded[i].purchases).String(),
		})
	}

	out.TotalSpent = total
	if len(loaded) > 0 {
		out.AverageSpentPerTrip = total.DivRound(decimal.NewFromInt(int64(len(loaded))), 2)
	}

	for i := range expenses {
		if out.MostExpensiveTrip == nil || expenses[i].TotalExpense.GreaterThan(out.MostExpensiveTrip.TotalExpense) {
			e := expenses[i]
			out.MostExpensiveTrip = &e
		}
	}

	ranked := make([]resp.TripExpense, 0, len(expenses))
	for _, e := range expenses {
		if e.TotalExpense.IsPositive() {
			ranked = append(ranked, e)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalExpense.GreaterThan(ranked[j].TotalExpense)
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	out.TopExpensiveTrips = ranked
}

// fillLocations tallies countries and destinations over each trip's first
// destination link only; extra legs do not count as separate visits.
func (s *StatsService) fillLocations(out *resp.UserStatsResponse, loaded []tripStats) {
	countryCounts := map[string]int64{}
	destCounts := map[string]int64{}
	destCountries := map[string]string{}
	var countryOrder, destOrder []string

	for i := range loaded {
		if len(loaded[i].links) == 0 || loaded[i].links[0].Destination == nil {
			continue
		}
		dest := loaded[i].links[0].Destination

		country := dest.Country
		if country == "" {
			country = dbm.ExtractCountry(dest.Name)
		}
		if _, seen := countryCounts[country]; !seen {
			countryOrder = append(countryOrder, country)
		}
		countryCounts[country]++

		if _, seen := destCounts[dest.Name]; !seen {
			destOrder = append(destOrder, dest.Name)
			destCountries[dest.Name] = country
		}
		destCounts[dest.Name]++
	}

	countries := make([]resp.CountryVisitStats, 0, len(countryOrder))
	for _, c := range countryOrder {
		countries = append(countries, resp.CountryVisitStats{Country: c, VisitCount: countryCounts[c]})
	}
	sort.SliceStable(countries, func(i, j int) bool {
		return countries[i].VisitCount > countries[j].VisitCount
	})
	out.CountriesVisited = countries

	destinations := make([]resp.DestinationVisitStats, 0, len(destOrder))
	for _, d := range destOrder {
		destinations = append(destinations, resp.DestinationVisitStats{
			DestinationName: d,
			Country:         destCountries[d],
			VisitCount:      destCounts[d],
		})
	}
	sort.SliceStable(destinations, func(i, j int) bool {
		return destinations[i].VisitCount > destinations[j].VisitCount
	})
	if len(destinations) > 10 {
		destinations = destinations[:10]
	}
	out.TopDestinations = destinations

	if len(destinations) > 0 {
		out.MostTraveledLocation = destinations[0].DestinationName
		out.MostTraveledLocationCount = destinations[0].VisitCount
	}
}

// fillMonthlyTrips buckets trips by their start month.
func (s *StatsService) fillMonthlyTrips(out *resp.UserStatsResponse, loaded []tripStats) {
	counts := map[string]int64{}
	for i := range loaded {
		if loaded[i].trip.DateStart.IsZero() {
			continue
		}
		counts[utils.MonthKey(loaded[i].trip.DateStart)]++
	}
	for _, key := range sortedKeys(counts) {
		out.MonthlyTrips = append(out.MonthlyTrips, resp.MonthlyTripStats{
			Month:     key,
			MonthName: utils.MonthDisplayName(key),
			TripCount: counts[key],
		})
	}
}

// fillMonthlyExpenses attributes each trip's whole spend to the month the
// trip starts. The temporal series below buckets by purchase date instead;
// the two views are intentionally different.
func (s *StatsService) fillMonthlyExpenses(out *resp.UserStatsResponse, loaded []tripStats) {
	totals := map[string]decimal.Decimal{}
	for i := range loaded {
		if loaded[i].trip.DateStart.IsZero() {
			continue
		}
		key := utils.MonthKey(loaded[i].trip.DateStart)
		current, ok := totals[key]
		if !ok {
			current = decimal.Zero
		}
		totals[key] = current.Add(sumPrices(loaded[i].purchases))
	}
	for _, key := range sortedDecimalKeys(totals) {
		out.MonthlyExpenses = append(out.MonthlyExpenses, resp.MonthlyExpenseStats{
			Month:        key,
			MonthName:    utils.MonthDisplayName(key),
			TotalExpense: totals[key],
			Currency:     dbm.CurrencyPesos.String(),
		})
	}
}

func (s *StatsService) fillYearlyExpenses(out *resp.UserStatsResponse, loaded []tripStats) {
	totals := map[string]decimal.Decimal{}
	tripCounts := map[string]int64{}
	for i := range loaded {
		if loaded[i].trip.DateStart.IsZero() {
			continue
		}
		key := utils.YearKey(loaded[i].trip.DateStart)
		current, ok := totals[key]
		if !ok {
			current = decimal.Zero
		}
		totals[key] = current.Add(sumPrices(loaded[i].purchases))
		tripCounts[key]++
	}
	for _, key := range sortedDecimalKeys(totals) {
		out.YearlyExpenses = append(out.YearlyExpenses, resp.YearlyExpenseStats{
			Year:         key,
			TotalExpense: totals[key],
			Currency:     dbm.CurrencyPesos.String(),
			TripCount:    tripCounts[key],
		})
	}
}

func (s *StatsService) fillCurrencyDistribution(out *resp.UserStatsResponse, loaded []tripStats) {
	totals := map[dbm.Currency]decimal.Decimal{}
	counts := map[dbm.Currency]int64{}
	for i := range loaded {
		for _, p := range loaded[i].purchases {
			current, ok := totals[p.Currency]
			if !ok {
				current = decimal.Zero
			}
			totals[p.Currency] = current.Add(p.Price)
			counts[p.Currency]++
		}
	}
	// Fixed currency order keeps the report deterministic.
	for _, c := range []dbm.Currency{dbm.CurrencyPesos, dbm.CurrencyDolares, dbm.CurrencyEuros} {
		total, ok := totals[c]
		if !ok {
			continue
		}
		out.ExpensesByCurrency = append(out.ExpensesByCurrency, resp.CurrencyExpenseStats{
			Currency:       c.String(),
			CurrencyCode:   c.Code(),
			CurrencySymbol: c.Symbol(),
			TotalExpense:   total,
			PurchaseCount:  counts[c],
		})
	}
}

func (s *StatsService) fillTipStats(out *resp.UserStatsResponse, loaded []tripStats) {
	typeCounts := map[string]int64{}
	typeIcons := map[string]string{}
	typeRatingSums := map[string]float64{}
	typeRatingCounts := map[string]int64{}
	var typeOrder []string

	var total int64
	var ratingSum float64
	var ratingCount int64

	for i := range loaded {
		for _, tip := range loaded[i].tips {
			total++

			tipType := tip.TipType
			if tipType == "" {
				tipType = "otro"
			}
			if _, seen := typeCounts[tipType]; !seen {
				typeOrder = append(typeOrder, tipType)
				icon := tip.TipIcon
				if icon == "" {
					icon = defaultTipIcon
				}
				typeIcons[tipType] = icon
			}
			typeCounts[tipType]++

			if tip.Rating != nil {
				ratingSum += *tip.Rating
				ratingCount++
				typeRatingSums[tipType] += *tip.Rating
				typeRatingCounts[tipType]++
			}
		}
	}

	out.TipStats.TotalTips = total
	if ratingCount > 0 {
		out.TipStats.AverageRating = ratingSum / float64(ratingCount)
	}
	for _, tipType := range typeOrder {
		out.TipStats.DistributionByType = append(out.TipStats.DistributionByType, resp.TipTypeStats{
			TipType: tipType,
			TipIcon: typeIcons[tipType],
			Count:   typeCounts[tipType],
		})
		if typeRatingCounts[tipType] > 0 {
			out.TipStats.AverageRatingByType = append(out.TipStats.AverageRatingByType, resp.TipRatingByType{
				TipType:       tipType,
				TipIcon:       typeIcons[tipType],
				AverageRating: typeRatingSums[tipType] / float64(typeRatingCounts[tipType]),
				Count:         typeRatingCounts[tipType],
			})
		}
	}
}

// fillDurations only considers trips where both dates are set; the
// distribution omits empty ranges.
func (s *StatsService) fillDurations(out *resp.UserStatsResponse, loaded []tripStats) {
	buckets := []struct {
		label string
		min   int64
		max   int64
	}{
		{"1-3 days", 1, 3},
		{"4-7 days", 4, 7},
		{"8-14 days", 8, 14},
		{"15+ days", 15, 1<<63 - 1},
	}
	bucketCounts := make([]int64, len(buckets))

	var totalDays, counted int64
	var shortest, longest int64
	for i := range loaded {
		days, ok := loaded[i].trip.DurationDays()
		if !ok {
			continue
		}
		totalDays += days
		counted++
		if counted == 1 || days < shortest {
			shortest = days
		}
		if days > longest {
			longest = days
		}
		for b := range buckets {
			if days >= buckets[b].min && days <= buckets[b].max {
				bucketCounts[b]++
				break
			}
		}
	}

	if counted == 0 {
		return
	}
	out.TripDurationStats.AverageDurationDays = float64(totalDays) / float64(counted)
	out.TripDurationStats.ShortestTripDays = shortest
	out.TripDurationStats.LongestTripDays = longest
	for b := range buckets {
		if bucketCounts[b] == 0 {
			continue
		}
		out.TripDurationStats.DistributionByRange = append(out.TripDurationStats.DistributionByRange, resp.DurationRangeStats{
			Range:     buckets[b].label,
			TripCount: bucketCounts[b],
		})
	}
}

// fillTransportModes counts every destination link, not just the first; each
// leg is one use of its transport mode.
func (s *StatsService) fillTransportModes(out *resp.UserStatsResponse, loaded []tripStats) {
	counts := map[string]int64{}
	var order []string
	for i := range loaded {
		for _, link := range loaded[i].links {
			mode := link.TransportMode
			if mode == "" {
				mode = dbm.TransportModeCar
			}
			if _, seen := counts[mode]; !seen {
				order = append(order, mode)
			}
			counts[mode]++
		}
	}
	modes := make([]resp.TransportModeStats, 0, len(order))
	for _, mode := range order {
		modes = append(modes, resp.TransportModeStats{TransportMode: mode, TripCount: counts[mode]})
	}
	sort.SliceStable(modes, func(i, j int) bool { return modes[i].TripCount > modes[j].TripCount })
	out.TransportModeStats = modes
}

func (s *StatsService) fillLedgerSplit(out *resp.UserStatsResponse, loaded []tripStats) {
	general := decimal.Zero
	individual := decimal.Zero
	var generalCount, individualCount int64
	for i := range loaded {
		for _, p := range loaded[i].purchases {
			if p.IsGeneral {
				general = general.Add(p.Price)
				generalCount++
			} else {
				individual = individual.Add(p.Price)
				individualCount++
			}
		}
	}
	out.GeneralVsIndividualExpense = resp.GeneralVsIndividualExpenseStat{
		GeneralExpenses:         general,
		IndividualExpenses:      individual,
		GeneralPurchaseCount:    generalCount,
		IndividualPurchaseCount: individualCount,
		Currency:                dbm.CurrencyPesos.String(),
	}
}

// fillTemporalExpenses buckets by the purchase date itself, so spend made
// before or after the trip lands on the month it actually happened.
func (s *StatsService) fillTemporalExpenses(out *resp.UserStatsResponse, loaded []tripStats) {
	totals := map[string]decimal.Decimal{}
	counts := map[string]int64{}
	for i := range loaded {
		for _, p := range loaded[i].purchases {
			key := utils.MonthKey(p.PurchaseDate)
			current, ok := totals[key]
			if !ok {
				current = decimal.Zero
			}
			totals[key] = current.Add(p.Price)
			counts[key]++
		}
	}
	for _, key := range sortedDecimalKeys(totals) {
		out.TemporalExpenses = append(out.TemporalExpenses, resp.TemporalExpenseStats{
			Period:        key,
			PeriodName:    utils.MonthDisplayName(key),
			TotalExpense:  totals[key],
			Currency:      dbm.CurrencyPesos.String(),
			PurchaseCount: counts[key],
		})
	}
}

func sumPrices(purchases []dbm.Purchase) decimal.Decimal {
	total := decimal.Zero
	for _, p := range purchases {
		total = total.Add(p.Price)
	}
	return total
}

// dominantCurrency picks the currency carrying the most spend on a trip,
// defaulting to pesos when there are no purchases.
func dominantCurrency(purchases []dbm.Purchase) dbm.Currency {
	totals := map[dbm.Currency]decimal.Decimal{}
	for _, p := range purchases {
		current, ok := totals[p.Currency]
		if !ok {
			current = decimal.Zero
		}
		totals[p.Currency] = current.Add(p.Price)
	}
	best := dbm.CurrencyPesos
	bestTotal := decimal.Zero
	for _, c := range []dbm.Currency{dbm.CurrencyPesos, dbm.CurrencyDolares, dbm.CurrencyEuros} {
		if total, ok := totals[c]; ok && total.GreaterThan(bestTotal) {
			best = c
			bestTotal = total
		}
	}
	return best
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedDecimalKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
