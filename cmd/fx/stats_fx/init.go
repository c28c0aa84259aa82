package statsfx

import (
	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideStatsService, provideStatsController)

func provideStatsService(
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
	purchaseRepo repositories.PurchaseRepository,
	tipRepo repositories.TipRepository,
	destinationRepo repositories.DestinationRepository,
) services.StatsServiceInterface {
	return services.NewStatsService(tripRepo, userRepo, purchaseRepo, tipRepo, destinationRepo)
}

func provideStatsController(statsService services.StatsServiceInterface) *controllers.StatsController {
	return controllers.NewStatsController(statsService)
}
