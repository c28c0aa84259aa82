package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
	"tripmate/internal/repositories"
)

// In-memory repository fakes. WithTx returns the fake itself and the fake
// runner calls fn with a nil *gorm.DB, which the real repositories also
// accept, so transactional service code runs unchanged in tests.

type fakeTxRunner struct{}

func (fakeTxRunner) RunInTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeTripRepo struct {
	trips   []*dbm.Trip
	members []memberRow
}

type memberRow struct {
	tripID uuid.UUID
	userID uuid.UUID
}

func newFakeTripRepo() *fakeTripRepo { return &fakeTripRepo{} }

func (f *fakeTripRepo) WithTx(tx *gorm.DB) repositories.TripRepository { return f }

func (f *fakeTripRepo) Insert(ctx context.Context, trip *dbm.Trip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	f.trips = append(f.trips, trip)
	return nil
}

func (f *fakeTripRepo) Save(ctx context.Context, trip *dbm.Trip) error {
	for i := range f.trips {
		if f.trips[i].ID == trip.ID {
			f.trips[i] = trip
			return nil
		}
	}
	f.trips = append(f.trips, trip)
	return nil
}

func (f *fakeTripRepo) FindByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {
	for _, t := range f.trips {
		if t.ID == tripID {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTripRepo) FindByJoinCode(ctx context.Context, code string) (*dbm.Trip, error) {
	for _, t := range f.trips {
		if t.JoinCode == code {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTripRepo) JoinCodeExists(ctx context.Context, code string) (bool, error) {
	t, _ := f.FindByJoinCode(ctx, code)
	return t != nil, nil
}

func (f *fakeTripRepo) FindByMemberUser(ctx context.Context, userID uuid.UUID) ([]dbm.Trip, error) {
	var out []dbm.Trip
	for _, t := range f.trips {
		for _, m := range f.members {
			if m.tripID == t.ID && m.userID == userID {
				out = append(out, *t)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeTripRepo) ExistsMembership(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	for _, m := range f.members {
		if m.tripID == tripID && m.userID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTripRepo) AddMembership(ctx context.Context, tripID, userID uuid.UUID) error {
	exists, _ := f.ExistsMembership(ctx, tripID, userID)
	if exists {
		return repositories.ErrDuplicateMembership
	}
	f.members = append(f.members, memberRow{tripID: tripID, userID: userID})
	return nil
}

func (f *fakeTripRepo) RemoveMembership(ctx context.Context, tripID, userID uuid.UUID) error {
	out := f.members[:0]
	for _, m := range f.members {
		if m.tripID != tripID || m.userID != userID {
			out = append(out, m)
		}
	}
	f.members = out
	return nil
}

func (f *fakeTripRepo) CountMembers(ctx context.Context, tripID uuid.UUID) (int64, error) {
	var n int64
	for _, m := range f.members {
		if m.tripID == tripID {
			n++
		}
	}
	return n, nil
}

func (f *fakeTripRepo) DeleteCascade(ctx context.Context, tripID uuid.UUID) error {
	trips := f.trips[:0]
	for _, t := range f.trips {
		if t.ID != tripID {
			trips = append(trips, t)
		}
	}
	f.trips = trips

	members := f.members[:0]
	for _, m := range f.members {
		if m.tripID != tripID {
			members = append(members, m)
		}
	}
	f.members = members
	return nil
}

type fakeUserRepo struct {
	users []*dbm.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{} }

func (f *fakeUserRepo) Insert(ctx context.Context, user *dbm.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userID uuid.UUID) (*dbm.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*dbm.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.User, error) {
	return nil, nil
}

type fakeWalletRepo struct {
	wallets []*dbm.Wallet
}

func newFakeWalletRepo() *fakeWalletRepo { return &fakeWalletRepo{} }

func (f *fakeWalletRepo) WithTx(tx *gorm.DB) repositories.WalletRepository { return f }

func (f *fakeWalletRepo) Insert(ctx context.Context, wallet *dbm.Wallet) error {
	if wallet.ID == uuid.Nil {
		wallet.ID = uuid.New()
	}
	f.wallets = append(f.wallets, wallet)
	return nil
}

func (f *fakeWalletRepo) Save(ctx context.Context, wallet *dbm.Wallet) error {
	for i := range f.wallets {
		if f.wallets[i].ID == wallet.ID {
			f.wallets[i] = wallet
			return nil
		}
	}
	f.wallets = append(f.wallets, wallet)
	return nil
}

func (f *fakeWalletRepo) FindGeneralByTrip(ctx context.Context, tripID uuid.UUID) (*dbm.Wallet, error) {
	for _, w := range f.wallets {
		if w.TripID == tripID && w.IsGeneral {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeWalletRepo) FindIndividual(ctx context.Context, tripID, userID uuid.UUID) (*dbm.Wallet, error) {
	for _, w := range f.wallets {
		if w.TripID == tripID && !w.IsGeneral && w.UserID != nil && *w.UserID == userID {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeWalletRepo) FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Wallet, error) {
	var out []dbm.Wallet
	for _, w := range f.wallets {
		if w.TripID == tripID {
			out = append(out, *w)
		}
	}
	return out, nil
}

type fakePurchaseRepo struct {
	purchases []*dbm.Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo { return &fakePurchaseRepo{} }

func (f *fakePurchaseRepo) Insert(ctx context.Context, purchase *dbm.Purchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	f.purchases = append(f.purchases, purchase)
	return nil
}

func (f *fakePurchaseRepo) Save(ctx context.Context, purchase *dbm.Purchase) error {
	for i := range f.purchases {
		if f.purchases[i].ID == purchase.ID {
			f.purchases[i] = purchase
			return nil
		}
	}
	f.purchases = append(f.purchases, purchase)
	return nil
}

func (f *fakePurchaseRepo) Delete(ctx context.Context, purchase *dbm.Purchase) error {
	out := f.purchases[:0]
	for _, p := range f.purchases {
		if p.ID != purchase.ID {
			out = append(out, p)
		}
	}
	f.purchases = out
	return nil
}

func (f *fakePurchaseRepo) FindByIDAndTrip(ctx context.Context, purchaseID, tripID uuid.UUID) (*dbm.Purchase, error) {
	for _, p := range f.purchases {
		if p.ID == purchaseID && p.TripID == tripID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePurchaseRepo) FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Purchase, error) {
	var out []dbm.Purchase
	for _, p := range f.purchases {
		if p.TripID == tripID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePurchaseRepo) FindGeneralByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Purchase, error) {
	var out []dbm.Purchase
	for _, p := range f.purchases {
		if p.TripID == tripID && p.IsGeneral {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePurchaseRepo) FindIndividualByTripAndUser(ctx context.Context, tripID, userID uuid.UUID) ([]dbm.Purchase, error) {
	var out []dbm.Purchase
	for _, p := range f.purchases {
		if p.TripID == tripID && !p.IsGeneral && p.UserID != nil && *p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeTipRepo struct {
	tips []*dbm.Tip
}

func newFakeTipRepo() *fakeTipRepo { return &fakeTipRepo{} }

func (f *fakeTipRepo) Insert(ctx context.Context, tip *dbm.Tip) error {
	if tip.ID == uuid.Nil {
		tip.ID = uuid.New()
	}
	f.tips = append(f.tips, tip)
	return nil
}

func (f *fakeTipRepo) FindByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Tip, error) {
	var out []dbm.Tip
	for _, t := range f.tips {
		if t.TripID == tripID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTipRepo) FindByTripAndType(ctx context.Context, tripID uuid.UUID, tipType string) ([]dbm.Tip, error) {
	var out []dbm.Tip
	for _, t := range f.tips {
		if t.TripID == tripID && t.TipType == tipType {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTipRepo) FindByTripAndCreator(ctx context.Context, tripID uuid.UUID, createdBy string) ([]dbm.Tip, error) {
	var out []dbm.Tip
	for _, t := range f.tips {
		if t.TripID == tripID && t.CreatedBy == createdBy {
			out = append(out, *t)
		}
	}
	return out, nil
}

type fakeDestinationRepo struct {
	destinations []*dbm.Destination
	links        []*dbm.TripDestination
}

func newFakeDestinationRepo() *fakeDestinationRepo { return &fakeDestinationRepo{} }

func (f *fakeDestinationRepo) WithTx(tx *gorm.DB) repositories.DestinationRepository { return f }

func (f *fakeDestinationRepo) Insert(ctx context.Context, destination *dbm.Destination) error {
	if destination.ID == uuid.Nil {
		destination.ID = uuid.New()
	}
	f.destinations = append(f.destinations, destination)
	return nil
}

func (f *fakeDestinationRepo) FindByName(ctx context.Context, name string) (*dbm.Destination, error) {
	for _, d := range f.destinations {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDestinationRepo) InsertLink(ctx context.Context, link *dbm.TripDestination) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	f.links = append(f.links, link)
	return nil
}

func (f *fakeDestinationRepo) SaveLink(ctx context.Context, link *dbm.TripDestination) error {
	for i := range f.links {
		if f.links[i].ID == link.ID {
			f.links[i] = link
			return nil
		}
	}
	f.links = append(f.links, link)
	return nil
}

func (f *fakeDestinationRepo) DeleteLink(ctx context.Context, tripID, destinationID uuid.UUID) error {
	out := f.links[:0]
	for _, l := range f.links {
		if l.TripID != tripID || l.DestinationID != destinationID {
			out = append(out, l)
		}
	}
	f.links = out
	return nil
}

func (f *fakeDestinationRepo) FindLinksByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.TripDestination, error) {
	var out []dbm.TripDestination
	for _, l := range f.links {
		if l.TripID == tripID {
			out = append(out, *l)
		}
	}
	return out, nil
}
