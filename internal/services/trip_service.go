package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, creatorID uuid.UUID, request request_models.TripCreateRequest) (*resp.TripResponse, error)
	GetUserTrips(ctx context.Context, userID uuid.UUID) ([]resp.TripResponse, error)
	GetTripDetails(ctx context.Context, tripID, userID uuid.UUID) (*resp.TripDetailsResponse, error)
	GetTripParticipants(ctx context.Context, tripID, userID uuid.UUID) ([]resp.ParticipantInfo, error)
	UpdateTrip(ctx context.Context, tripID, userID uuid.UUID, request request_models.TripUpdateRequest) (*resp.TripResponse, error)
	UpdateTripDates(ctx context.Context, tripID, userID uuid.UUID, request request_models.TripDatesUpdateRequest) (*resp.TripResponse, error)
	UpdateTripLocations(ctx context.Context, tripID, userID uuid.UUID, request request_models.TripLocationUpdateRequest) (*resp.TripDetailsResponse, error)
	DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error

	AddUserToTrip(ctx context.Context, tripID, newUserID, actorID uuid.UUID) error
	RemoveUserFromTrip(ctx context.Context, tripID, userID, actorID uuid.UUID) error
	JoinTripByCode(ctx context.Context, code string, userID uuid.UUID) (*resp.TripResponse, error)
	AddAdmin(ctx context.Context, tripID, newAdminID, actorID uuid.UUID) error
	RemoveAdmin(ctx context.Context, tripID, adminID, actorID uuid.UUID) error
}

type TripService struct {
	tripRepo        repositories.TripRepository
	userRepo        repositories.UserRepository
	walletRepo      repositories.WalletRepository
	destinationRepo repositories.DestinationRepository
	walletService   WalletServiceInterface
	txRunner        repositories.TxRunner
	now             func() time.Time
}

func NewTripService(
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	destinationRepo repositories.DestinationRepository,
	walletService WalletServiceInterface,
	txRunner repositories.TxRunner,
) TripServiceInterface {
	return &TripService{
		tripRepo:        tripRepo,
		userRepo:        userRepo,
		walletRepo:      walletRepo,
		destinationRepo: destinationRepo,
		walletService:   walletService,
		txRunner:        txRunner,
		now:             time.Now,
	}
}

// CreateTrip provisions the whole trip aggregate in one transaction: the trip
// row, the creator's membership, the general wallet, the creator's individual
// wallet and, when the request names a destination, the first route leg.
func (t *TripService) CreateTrip(ctx context.Context, creatorID uuid.UUID, request request_models.TripCreateRequest) (*resp.TripResponse, error) {
	dateStart, dateEnd, err := parseDateRange(request.DateStart, request.DateEnd)
	if err != nil {
		return nil, err
	}

	currency := dbm.CurrencyPesos
	if request.Currency != "" {
		currency = dbm.Currency(request.Currency)
		if !currency.Valid() {
			return nil, utils.ErrInvalidCurrency
		}
	}

	creator, err := t.userRepo.FindByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, utils.ErrUserNotFound
	}

	joinCode, err := t.uniqueJoinCode(ctx)
	if err != nil {
		return nil, err
	}

	cost := decimal.Zero
	if request.Cost != nil {
		cost = *request.Cost
	}

	trip := &dbm.Trip{
		Name:        request.Name,
		Description: request.Description,
		DateStart:   dateStart,
		DateEnd:     dateEnd,
		JoinCode:    joinCode,
		Cost:        cost,
		CreatedBy:   creatorID,
		AdminIDs:    dbm.UUIDList{creatorID},
	}

	err = t.txRunner.RunInTransaction(ctx, func(tx *gorm.DB) error {
		if err := t.tripRepo.WithTx(tx).Insert(ctx, trip); err != nil {
			return err
		}
		if err := t.tripRepo.WithTx(tx).AddMembership(ctx, trip.ID, creatorID); err != nil {
			return err
		}
		if _, err := t.walletService.CreateGeneralWallet(ctx, tx, trip.ID, cost, currency); err != nil {
			return err
		}
		if _, err := t.walletService.CreateIndividualWallet(ctx, tx, trip.ID, creatorID, currency); err != nil {
			return err
		}
		if request.Destination != "" {
			if err := t.createRouteLeg(ctx, tx, trip.ID, routeLegInput{
				Origin:             request.Origin,
				Destination:        request.Destination,
				OriginAddress:      request.OriginAddress,
				DestinationAddress: request.DestinationAddress,
				OriginCoords:       request.OriginCoords,
				DestinationCoords:  request.DestinationCoords,
				Vehicle:            request.Vehicle,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return t.buildTripResponse(trip), nil
}

func (t *TripService) GetUserTrips(ctx context.Context, userID uuid.UUID) ([]resp.TripResponse, error) {
	user, err := t.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	trips, err := t.tripRepo.FindByMemberUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]resp.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *t.buildTripResponse(&trips[i]))
	}
	return out, nil
}

func (t *TripService) GetTripDetails(ctx context.Context, tripID, userID uuid.UUID) (*resp.TripDetailsResponse, error) {
	trip, err := t.tripForMember(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	details := &resp.TripDetailsResponse{TripResponse: *t.buildTripResponse(trip)}

	links, err := t.destinationRepo.FindLinksByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if len(links) > 0 {
		applyRouteLeg(details, &links[0])
	}

	participants, err := t.userRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	details.Participants = buildParticipantInfos(participants)

	return details, nil
}

func (t *TripService) GetTripParticipants(ctx context.Context, tripID, userID uuid.UUID) ([]resp.ParticipantInfo, error) {
	if _, err := t.tripForMember(ctx, tripID, userID); err != nil {
		return nil, err
	}
	participants, err := t.userRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return buildParticipantInfos(participants), nil
}

func (t *TripService) UpdateTrip(ctx context.Context, tripID, userID uuid.UUID, request request_models.TripUpdateRequest) (*resp.TripResponse, error) {
	dateStart, dateEnd, err := parseDateRange(request.DateStart, request.DateEnd)
	if err != nil {
		return nil, err
	}

	trip, err := t.tripForMember(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	trip.Name = request.Name
	trip.Description = request.Description
	trip.DateStart = dateStart
	trip.DateEnd = dateEnd
	if request.Cost != nil {
		trip.Cost = *request.Cost
	}
	if err := t.tripRepo.Save(ctx, trip); err != nil {
		return nil, err
	}
	return t.buildTripResponse(trip), nil
}

// UpdateTripDates is admin-only; status is derived from the dates, so moving
// them is what flips a trip between planning, active and completed.
func (t *TripService) UpdateTripDates(ctx context.Context, tripID, userID uuid.UUID, request request_models.TripDatesUpdateRequest) (*resp.TripResponse, error) {
	dateStart, dateEnd, err := parseDateRange(request.DateStart, request.DateEnd)
	if err != nil {
		return nil, err
	}

	trip, err := t.tripForAdmin(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	trip.DateStart = dateStart
	trip.DateEnd = dateEnd
	if err := t.tripRepo.Save(ctx, trip); err != nil {
		return nil, err
	}
	return t.buildTripResponse(trip), nil
}

// UpdateTripLocations replaces the trip's route leg. Destinations are shared
// rows keyed by name; switching destination drops the old link and creates a
// new one, while same-destination edits mutate the link in place.
func (t *TripService) UpdateTripLocations(ctx context.Context, tripID, userID uuid.UUID, request request_models.TripLocationUpdateRequest) (*resp.TripDetailsResponse, error) {
	if _, err := t.tripForAdmin(ctx, tripID, userID); err != nil {
		return nil, err
	}

	leg := routeLegInput{
		Origin:             request.Origin,
		Destination:        request.Destination,
		OriginAddress:      request.OriginAddress,
		DestinationAddress: request.DestinationAddress,
		OriginCoords:       request.OriginCoords,
		DestinationCoords:  request.DestinationCoords,
		Vehicle:            request.Vehicle,
	}

	err := t.txRunner.RunInTransaction(ctx, func(tx *gorm.DB) error {
		links, err := t.destinationRepo.WithTx(tx).FindLinksByTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if len(links) == 0 {
			return t.createRouteLeg(ctx, tx, tripID, leg)
		}

		current := &links[0]
		if current.Destination != nil && current.Destination.Name == request.Destination {
			applyRouteLegInput(current, leg)
			return t.destinationRepo.WithTx(tx).SaveLink(ctx, current)
		}

		if err := t.destinationRepo.WithTx(tx).DeleteLink(ctx, tripID, current.DestinationID); err != nil {
			return err
		}
		return t.createRouteLeg(ctx, tx, tripID, leg)
	})
	if err != nil {
		return nil, err
	}

	return t.GetTripDetails(ctx, tripID, userID)
}

func (t *TripService) DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	if _, err := t.tripForAdmin(ctx, tripID, userID); err != nil {
		return err
	}
	return t.txRunner.RunInTransaction(ctx, func(tx *gorm.DB) error {
		return t.tripRepo.WithTx(tx).DeleteCascade(ctx, tripID)
	})
}

// AddUserToTrip adds a member and provisions their individual wallet in the
// same transaction, using the general wallet's currency. A duplicate join
// losing the race on the membership index surfaces as ErrAlreadyMember.
func (t *TripService) AddUserToTrip(ctx context.Context, tripID, newUserID, actorID uuid.UUID) error {
	if _, err := t.tripForMember(ctx, tripID, actorID); err != nil {
		return err
	}

	newUser, err := t.userRepo.FindByID(ctx, newUserID)
	if err != nil {
		return err
	}
	if newUser == nil {
		return utils.ErrUserNotFound
	}

	return t.enroll(ctx, tripID, newUserID)
}

func (t *TripService) JoinTripByCode(ctx context.Context, code string, userID uuid.UUID) (*resp.TripResponse, error) {
	trip, err := t.tripRepo.FindByJoinCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.ErrInvalidJoinCode
	}

	user, err := t.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if err := t.enroll(ctx, trip.ID, userID); err != nil {
		return nil, err
	}
	return t.buildTripResponse(trip), nil
}

func (t *TripService) enroll(ctx context.Context, tripID, userID uuid.UUID) error {
	isMember, err := t.tripRepo.ExistsMembership(ctx, tripID, userID)
	if err != nil {
		return err
	}
	if isMember {
		return utils.ErrAlreadyMember
	}

	return t.txRunner.RunInTransaction(ctx, func(tx *gorm.DB) error {
		if err := t.tripRepo.WithTx(tx).AddMembership(ctx, tripID, userID); err != nil {
			if err == repositories.ErrDuplicateMembership {
				return utils.ErrAlreadyMember
			}
			return err
		}

		currency := dbm.CurrencyPesos
		general, err := t.walletRepo.WithTx(tx).FindGeneralByTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if general != nil {
			currency = general.Currency
		}

		_, err = t.walletService.CreateIndividualWallet(ctx, tx, tripID, userID, currency)
		return err
	})
}

// RemoveUserFromTrip lets a member leave or another member remove them. When
// the last member leaves, the trip and everything under it goes too.
func (t *TripService) RemoveUserFromTrip(ctx context.Context, tripID, userID, actorID uuid.UUID) error {
	if actorID == userID {
		// Leaving your own trip only needs the trip to exist.
		trip, err := t.tripRepo.FindByID(ctx, tripID)
		if err != nil {
			return err
		}
		if trip == nil {
			return utils.ErrTripNotFound
		}
	} else if _, err := t.tripForMember(ctx, tripID, actorID); err != nil {
		return err
	}

	isMember, err := t.tripRepo.ExistsMembership(ctx, tripID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return utils.ErrNotMember
	}

	return t.txRunner.RunInTransaction(ctx, func(tx *gorm.DB) error {
		if err := t.tripRepo.WithTx(tx).RemoveMembership(ctx, tripID, userID); err != nil {
			return err
		}
		remaining, err := t.tripRepo.WithTx(tx).CountMembers(ctx, tripID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return t.tripRepo.WithTx(tx).DeleteCascade(ctx, tripID)
		}
		return nil
	})
}

func (t *TripService) AddAdmin(ctx context.Context, tripID, newAdminID, actorID uuid.UUID) error {
	trip, err := t.tripForAdmin(ctx, tripID, actorID)
	if err != nil {
		return err
	}

	isMember, err := t.tripRepo.ExistsMembership(ctx, tripID, newAdminID)
	if err != nil {
		return err
	}
	if !isMember {
		return utils.ErrNotMember
	}

	if trip.AdminIDs.Contains(newAdminID) {
		return nil
	}
	trip.AdminIDs = append(trip.AdminIDs, newAdminID)
	return t.tripRepo.Save(ctx, trip)
}

// RemoveAdmin refuses to demote the last admin so the trip never becomes
// unmanageable.
func (t *TripService) RemoveAdmin(ctx context.Context, tripID, adminID, actorID uuid.UUID) error {
	trip, err := t.tripForAdmin(ctx, tripID, actorID)
	if err != nil {
		return err
	}

	if !trip.AdminIDs.Contains(adminID) {
		return nil
	}
	if len(trip.AdminIDs) <= 1 {
		return utils.ErrLastAdmin
	}
	trip.AdminIDs = trip.AdminIDs.Without(adminID)
	return t.tripRepo.Save(ctx, trip)
}

// tripForMember loads the trip and checks the caller belongs to it.
func (t *TripService) tripForMember(ctx context.Context, tripID, userID uuid.UUID) (*dbm.Trip, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	isMember, err := t.tripRepo.ExistsMembership(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}

func (t *TripService) tripForAdmin(ctx context.Context, tripID, userID uuid.UUID) (*dbm.Trip, error) {
	trip, err := t.tripForMember(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	if !trip.IsAdmin(userID) {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}

func (t *TripService) uniqueJoinCode(ctx context.Context) (string, error) {
	for {
		code := utils.NewJoinCode()
		exists, err := t.tripRepo.JoinCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

type routeLegInput struct {
	Origin             string
	Destination        string
	OriginAddress      string
	DestinationAddress string
	OriginCoords       *request_models.Coords
	DestinationCoords  *request_models.Coords
	Vehicle            string
}

func (t *TripService) createRouteLeg(ctx context.Context, tx *gorm.DB, tripID uuid.UUID, leg routeLegInput) error {
	repo := t.destinationRepo.WithTx(tx)

	destination, err := repo.FindByName(ctx, leg.Destination)
	if err != nil {
		return err
	}
	if destination == nil {
		destination = &dbm.Destination{
			Name:    leg.Destination,
			Country: dbm.ExtractCountry(leg.Destination),
		}
		if err := repo.Insert(ctx, destination); err != nil {
			return err
		}
	}

	link := &dbm.TripDestination{
		TripID:        tripID,
		DestinationID: destination.ID,
		Destination:   destination,
	}
	applyRouteLegInput(link, leg)
	return repo.InsertLink(ctx, link)
}

func applyRouteLegInput(link *dbm.TripDestination, leg routeLegInput) {
	link.TransportMode = leg.Vehicle
	if link.TransportMode == "" {
		link.TransportMode = dbm.TransportModeCar
	}
	link.OriginAddress = firstNonEmpty(leg.OriginAddress, leg.Origin)
	link.DestinationAddress = firstNonEmpty(leg.DestinationAddress, leg.Destination)
	link.OriginLatitude, link.OriginLongitude = coordsToDecimals(leg.OriginCoords)
	link.DestinationLatitude, link.DestinationLongitude = coordsToDecimals(leg.DestinationCoords)
}

func applyRouteLeg(details *resp.TripDetailsResponse, link *dbm.TripDestination) {
	details.TransportMode = link.TransportMode
	details.OriginAddress = link.OriginAddress
	details.DestinationAddress = link.DestinationAddress
	if link.Destination != nil {
		details.Destination = link.Destination.Name
	}
	details.Origin = link.OriginAddress
	details.OriginLatitude = decimalToFloat(link.OriginLatitude)
	details.OriginLongitude = decimalToFloat(link.OriginLongitude)
	details.DestinationLatitude = decimalToFloat(link.DestinationLatitude)
	details.DestinationLongitude = decimalToFloat(link.DestinationLongitude)
}

func (t *TripService) buildTripResponse(trip *dbm.Trip) *resp.TripResponse {
	admins := make([]string, 0, len(trip.AdminIDs))
	for _, id := range trip.AdminIDs {
		admins = append(admins, id.String())
	}
	return &resp.TripResponse{
		ID:          trip.ID.String(),
		Name:        trip.Name,
		Description: trip.Description,
		DateStart:   formatDate(trip.DateStart),
		DateEnd:     formatDate(trip.DateEnd),
		Cost:        trip.Cost,
		JoinCode:    trip.JoinCode,
		Status:      trip.StatusOn(t.now()),
		CreatedBy:   trip.CreatedBy.String(),
		AdminIDs:    admins,
	}
}

func buildParticipantInfos(users []dbm.User) []resp.ParticipantInfo {
	out := make([]resp.ParticipantInfo, 0, len(users))
	for i := range users {
		out = append(out, resp.ParticipantInfo{
			ID:    users[i].ID,
			Name:  users[i].Name,
			Email: users[i].Email,
		})
	}
	return out
}

func parseDateRange(rawStart, rawEnd string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ErrInvalidInput
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, utils.ErrInvalidDateRange
	}
	return start, end, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func coordsToDecimals(c *request_models.Coords) (*decimal.Decimal, *decimal.Decimal) {
	if c == nil {
		return nil, nil
	}
	lat := decimal.NewFromFloat(c.Lat)
	lng := decimal.NewFromFloat(c.Lng)
	return &lat, &lng
}

func decimalToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f, _ := d.Float64()
	return &f
}
