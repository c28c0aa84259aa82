package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

func mustUUID(t *testing.T, raw string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(raw)
	require.NoError(t, err)
	return id
}

func createTestTrip(t *testing.T, f *tripFixture, creator *dbm.User, currency string) uuid.UUID {
	t.Helper()
	trip, err := f.svc.CreateTrip(f.ctx, creator.ID, request_models.TripCreateRequest{
		Name:      "Test trip",
		DateStart: "2026-01-10",
		DateEnd:   "2026-01-17",
		Currency:  currency,
	})
	require.NoError(t, err)
	return mustUUID(t, trip.ID)
}

type tripFixture struct {
	svc       TripServiceInterface
	trips     *fakeTripRepo
	users     *fakeUserRepo
	wallets   *fakeWalletRepo
	dests     *fakeDestinationRepo
	walletSvc WalletServiceInterface
	ctx       context.Context
}

func newTripFixture() *tripFixture {
	trips := newFakeTripRepo()
	users := newFakeUserRepo()
	wallets := newFakeWalletRepo()
	dests := newFakeDestinationRepo()
	walletSvc := NewWalletService(wallets, trips, users)
	svc := NewTripService(trips, users, wallets, dests, walletSvc, fakeTxRunner{})
	return &tripFixture{
		svc:       svc,
		trips:     trips,
		users:     users,
		wallets:   wallets,
		dests:     dests,
		walletSvc: walletSvc,
		ctx:       context.Background(),
	}
}

func (f *tripFixture) addUser(t *testing.T, name string) *dbm.User {
	t.Helper()
	user := &dbm.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, f.users.Insert(f.ctx, user))
	return user
}

func TestCreateTripProvisionsTheWholeAggregate(t *testing.T) {
	f := newTripFixture()
	creator := f.addUser(t, "ana")

	cost := decimal.RequireFromString("1500.00")
	trip, err := f.svc.CreateTrip(f.ctx, creator.ID, request_models.TripCreateRequest{
		Name:        "Mendoza 2026",
		DateStart:   "2026-01-10",
		DateEnd:     "2026-01-17",
		Cost:        &cost,
		Currency:    "DOLARES",
		Destination: "Mendoza, Argentina",
		Vehicle:     dbm.TransportModePlane,
	})
	require.NoError(t, err)
	require.NotNil(t, trip)

	assert.Len(t, trip.JoinCode, 8)
	assert.Equal(t, []string{creator.ID.String()}, trip.AdminIDs)

	stored, err := f.trips.FindByID(f.ctx, mustUUID(t, trip.ID))
	require.NoError(t, err)
	require.NotNil(t, stored)

	isMember, err := f.trips.ExistsMembership(f.ctx, stored.ID, creator.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	general, err := f.wallets.FindGeneralByTrip(f.ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, general)
	assert.True(t, general.Amount.Equal(cost))
	assert.Equal(t, dbm.CurrencyDolares, general.Currency)

	individual, err := f.wallets.FindIndividual(f.ctx, stored.ID, creator.ID)
	require.NoError(t, err)
	require.NotNil(t, individual)
	assert.True(t, individual.Amount.IsZero())
	assert.Equal(t, dbm.CurrencyDolares, individual.Currency)

	links, err := f.dests.FindLinksByTrip(f.ctx, stored.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, dbm.TransportModePlane, links[0].TransportMode)
	assert.Equal(t, "Argentina", links[0].Destination.Country)
}

func TestCreateTripRejectsInvertedDates(t *testing.T) {
	f := newTripFixture()
	creator := f.addUser(t, "ana")

	_, err := f.svc.CreateTrip(f.ctx, creator.ID, request_models.TripCreateRequest{
		Name:      "Backwards",
		DateStart: "2026-02-10",
		DateEnd:   "2026-02-01",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestAddUserToTripCreatesExactlyOneWallet(t *testing.T) {
	f := newTripFixture()
	creator := f.addUser(t, "ana")
	friend := f.addUser(t, "bruno")
	trip := createTestTrip(t, f, creator, "EUROS")

	require.NoError(t, f.svc.AddUserToTrip(f.ctx, trip, friend.ID, creator.ID))

	err := f.svc.AddUserToTrip(f.ctx, trip, friend.ID, creator.ID)
	assert.ErrorIs(t, err, utils.ErrAlreadyMember)

	// The second attempt must not have provisioned a duplicate wallet.
	var count int
	for _, w := range f.wallets.wallets {
		if w.TripID == trip && !w.IsGeneral && w.UserID != nil && *w.UserID == friend.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// The new member's wallet inherits the general wallet currency.
	wallet, err := f.wallets.FindIndividual(f.ctx, trip, friend.ID)
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.Equal(t, dbm.CurrencyEuros, wallet.Currency)
}

func TestJoinTripByCode(t *testing.T) {
	f := newTripFixture()
	creator := f.addUser(t, "ana")
	friend := f.addUser(t, "bruno")
	tripID := createTestTrip(t, f, creator, "PESOS")

	stored, err := f.trips.FindByID(f.ctx, tripID)
	require.NoError(t, err)

	joined, err := f.svc.JoinTripByCode(f.ctx, stored.JoinCode, friend.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), joined.ID)

	_, err = f.svc.JoinTripByCode(f.ctx, stored.JoinCode, friend.ID)
	assert.ErrorIs(t, err, utils.ErrAlreadyMember)

	_, err = f.svc.JoinTripByCode(f.ctx, "NOPE1234", friend.ID)
	assert.ErrorIs(t, err, utils.ErrInvalidJoinCode)
}

func TestRemoveLastMemberDeletesTheTrip(t *testing.T) {
	f := newTripFixture()
	creator := f.addUser(t, "ana")
	tripID := createTestTrip(t, f, creator, "PESOS")

	require.NoError(t, f.svc.RemoveUserFromTrip(f.ctx, tripID, creator.ID, creator.ID))

	stored, err := f.trips.FindByID(f.ctx, tripID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestRemoveUserKeepsTripWhenMembersRemain(t *testing.T) {
	f := newTripFixture()
	creator := f.addUser(t, "ana")
	friend := f.addUser(t, "bruno")
	tripID := createTestTrip(t, f, creator, "PESOS")
	require.NoError(t, f.svc.AddUserToTrip(f.ctx, tripID, friend.ID, creator.ID))

	require.NoError(t, f.svc.RemoveUserFromTrip(f.ctx, tripID, friend.ID, creator.ID))

	stored, err := f.trips.FindByID(f.ctx, tripID)
	require.NoError(t, err)
	assert.NotNil(t, stored)

	err = f.svc.RemoveUserFromTrip(f.ctx, tripID, friend.ID, creator.ID)
	assert.ErrorIs(t, err, utils.ErrNotMember)
}

func TestAdminManagement(t *testing.T) {
	f := newTripFixture()
	creator := f.addUser(t, "ana")
	friend := f.addUser(t, "bruno")
	tripID := createTestTrip(t, f, creator, "PESOS")

	// Members only; an outsider cannot be promoted.
	err := f.svc.AddAdmin(f.ctx, tripID, friend.ID, creator.ID)
	assert.ErrorIs(t, err, utils.ErrNotMember)

	require.NoError(t, f.svc.AddUserToTrip(f.ctx, tripID, friend.ID, creator.ID))
	require.NoError(t, f.svc.AddAdmin(f.ctx, tripID, friend.ID, creator.ID))

	stored, _ := f.trips.FindByID(f.ctx, tripID)
	assert.True(t, stored.IsAdmin(friend.ID))

	require.NoError(t, f.svc.RemoveAdmin(f.ctx, tripID, friend.ID, creator.ID))
	require.NoError(t, f.svc.RemoveAdmin(f.ctx, tripID, friend.ID, creator.ID)) // idempotent

	err = f.svc.RemoveAdmin(f.ctx, tripID, creator.ID, creator.ID)
	assert.ErrorIs(t, err, utils.ErrLastAdmin)
}

func TestUpdateTripDatesRequiresAdmin(t *testing.T) {
	f := newTripFixture()
	creator := f.addUser(t, "ana")
	friend := f.addUser(t, "bruno")
	tripID := createTestTrip(t, f, creator, "PESOS")
	require.NoError(t, f.svc.AddUserToTrip(f.ctx, tripID, friend.ID, creator.ID))

	_, err := f.svc.UpdateTripDates(f.ctx, tripID, friend.ID, request_models.TripDatesUpdateRequest{
		DateStart: "2026-03-01",
		DateEnd:   "2026-03-05",
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	updated, err := f.svc.UpdateTripDates(f.ctx, tripID, creator.ID, request_models.TripDatesUpdateRequest{
		DateStart: "2026-03-01",
		DateEnd:   "2026-03-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", updated.DateStart)
	assert.Equal(t, "2026-03-05", updated.DateEnd)
}

func TestGetTripDetailsRequiresMembership(t *testing.T) {
	f := newTripFixture()
	creator := f.addUser(t, "ana")
	outsider := f.addUser(t, "carla")
	tripID := createTestTrip(t, f, creator, "PESOS")

	_, err := f.svc.GetTripDetails(f.ctx, tripID, outsider.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestUpdateTripLocationsSwitchesDestination(t *testing.T) {
	f := newTripFixture()
	creator := f.addUser(t, "ana")
	tripID := createTestTrip(t, f, creator, "PESOS")

	_, err := f.svc.UpdateTripLocations(f.ctx, tripID, creator.ID, request_models.TripLocationUpdateRequest{
		Destination: "Bariloche, Argentina",
		Vehicle:     dbm.TransportModeCar,
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateTripLocations(f.ctx, tripID, creator.ID, request_models.TripLocationUpdateRequest{
		Destination: "Santiago, Chile",
		Vehicle:     dbm.TransportModePlane,
	})
	require.NoError(t, err)

	links, err := f.dests.FindLinksByTrip(f.ctx, tripID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Santiago, Chile", links[0].Destination.Name)
	assert.Equal(t, dbm.TransportModePlane, links[0].TransportMode)

	// The old destination row survives for other trips; only the link moved.
	old, err := f.dests.FindByName(f.ctx, "Bariloche, Argentina")
	require.NoError(t, err)
	assert.NotNil(t, old)
}
