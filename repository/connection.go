package repository

import (
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/sarilacivert/matchcenter-service/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func EstablishDatabaseConnection(cfg config.PG) *gorm.DB {
	connectionParams := fmt.Sprintf(
		"host=%s user=%s password=%s port=%s database=%s sslmode=disable",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Port,
		cfg.Database,
	)

	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(connectionParams), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		panic(err)
	}

	return db
}

// SQLXFromGorm wraps the underlying sql.DB of the gorm connection for the
// repositories written on sqlx.
func SQLXFromGorm(db *gorm.DB) *sqlx.DB {
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}

	return sqlx.NewDb(sqlDB, "pgx")
}
