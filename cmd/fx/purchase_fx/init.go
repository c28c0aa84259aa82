package purchasefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	providePurchaseRepo, providePurchaseService, providePurchaseController)

func providePurchaseRepo(db *gorm.DB) repositories.PurchaseRepository {
	return repositories.NewPurchaseRepository(db)
}

func providePurchaseService(
	purchaseRepo repositories.PurchaseRepository,
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
) services.PurchaseServiceInterface {
	return services.NewPurchaseService(purchaseRepo, tripRepo, userRepo)
}

func providePurchaseController(purchaseService services.PurchaseServiceInterface) *controllers.PurchaseController {
	return controllers.NewPurchaseController(purchaseService)
}
