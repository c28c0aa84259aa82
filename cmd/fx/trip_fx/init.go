package tripfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideDestinationRepo, provideTripService, provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	destinationRepo repositories.DestinationRepository,
	walletService services.WalletServiceInterface,
	txRunner repositories.TxRunner,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, userRepo, walletRepo, destinationRepo, walletService, txRunner)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
