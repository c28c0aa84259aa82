package walletfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideWalletRepo, provideWalletService, provideWalletController)

func provideWalletRepo(db *gorm.DB) repositories.WalletRepository {
	return repositories.NewWalletRepository(db)
}

func provideWalletService(
	walletRepo repositories.WalletRepository,
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
) services.WalletServiceInterface {
	return services.NewWalletService(walletRepo, tripRepo, userRepo)
}

func provideWalletController(walletService services.WalletServiceInterface) *controllers.WalletController {
	return controllers.NewWalletController(walletService)
}
