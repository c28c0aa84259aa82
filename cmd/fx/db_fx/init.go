package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/infra"
	"tripmate/internal/repositories"
)

var Module = fx.Provide(
	provideDB, provideTxRunner)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func provideTxRunner(db *gorm.DB) repositories.TxRunner {
	return repositories.NewTxRunner(db)
}
