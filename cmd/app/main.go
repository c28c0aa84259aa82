package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	accountfx "tripmate/cmd/fx/account_fx"
	dbfx "tripmate/cmd/fx/db_fx"
	purchasefx "tripmate/cmd/fx/purchase_fx"
	statsfx "tripmate/cmd/fx/stats_fx"
	tipfx "tripmate/cmd/fx/tip_fx"
	tripfx "tripmate/cmd/fx/trip_fx"
	walletfx "tripmate/cmd/fx/wallet_fx"
	"tripmate/internal/api/controllers"
	"tripmate/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		accountfx.Module,
		tripfx.Module,
		walletfx.Module,
		purchasefx.Module,
		tipfx.Module,
		statsfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	walletController *controllers.WalletController,
	purchaseController *controllers.PurchaseController,
	tipController *controllers.TipController,
	statsController *controllers.StatsController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, tripController, walletController, purchaseController, tipController, statsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	walletController *controllers.WalletController,
	purchaseController *controllers.PurchaseController,
	tipController *controllers.TipController,
	statsController *controllers.StatsController,
) {
	auth := r.Group("/auth")
	auth.POST("/signup", accountController.SignUp)
	auth.POST("/login", accountController.Login)

	api := r.Group("/")
	api.Use(middleware.JWTAuthMiddleware())

	api.GET("/me", accountController.GetMe)
	api.GET("/stats/me", statsController.GetMyStats)

	trips := api.Group("/trips")
	trips.POST("", tripController.CreateTrip)
	trips.GET("", tripController.GetMyTrips)
	trips.POST("/join", tripController.JoinTrip)
	trips.GET("/:tripId", tripController.GetTripDetails)
	trips.PUT("/:tripId", tripController.UpdateTrip)
	trips.DELETE("/:tripId", tripController.DeleteTrip)
	trips.PATCH("/:tripId/dates", tripController.UpdateTripDates)
	trips.PUT("/:tripId/locations", tripController.UpdateTripLocations)

	trips.GET("/:tripId/participants", tripController.GetParticipants)
	trips.POST("/:tripId/participants/:userId", tripController.AddParticipant)
	trips.DELETE("/:tripId/participants/:userId", tripController.RemoveParticipant)
	trips.POST("/:tripId/admins/:userId", tripController.AddAdmin)
	trips.DELETE("/:tripId/admins/:userId", tripController.RemoveAdmin)

	trips.GET("/:tripId/wallets", walletController.GetTripWallets)
	trips.GET("/:tripId/wallets/general", walletController.GetGeneralWallet)
	trips.PUT("/:tripId/wallets/general", walletController.UpdateGeneralWallet)
	trips.GET("/:tripId/wallets/me", walletController.GetMyWallet)
	trips.PUT("/:tripId/wallets/me", walletController.UpdateMyWallet)

	trips.GET("/:tripId/purchases", purchaseController.GetTripPurchases)
	trips.GET("/:tripId/purchases/general", purchaseController.GetGeneralPurchases)
	trips.POST("/:tripId/purchases/general", purchaseController.CreateGeneralPurchase)
	trips.PUT("/:tripId/purchases/general/:purchaseId", purchaseController.UpdateGeneralPurchase)
	trips.GET("/:tripId/purchases/me", purchaseController.GetMyPurchases)
	trips.POST("/:tripId/purchases/me", purchaseController.CreateMyPurchase)
	trips.PUT("/:tripId/purchases/me/:purchaseId", purchaseController.UpdateMyPurchase)
	trips.GET("/:tripId/purchases/:purchaseId", purchaseController.GetPurchase)
	trips.DELETE("/:tripId/purchases/:purchaseId", purchaseController.DeletePurchase)

	trips.POST("/:tripId/tips", tipController.CreateTip)
	trips.GET("/:tripId/tips", tipController.GetTips)
}
