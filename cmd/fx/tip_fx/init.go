package tipfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideTipRepo, provideTipService, provideTipController)

func provideTipRepo(db *gorm.DB) repositories.TipRepository {
	return repositories.NewTipRepository(db)
}

func provideTipService(tipRepo repositories.TipRepository, tripRepo repositories.TripRepository) services.TipServiceInterface {
	return services.NewTipService(tipRepo, tripRepo)
}

func provideTipController(tipService services.TipServiceInterface) *controllers.TipController {
	return controllers.NewTipController(tipService)
}
