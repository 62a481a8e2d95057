package config

import (
	"fmt"
	"strings"

	"foodgram-api/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// InitDB opens the postgres connection and migrates the schema.
func InitDB(cfg DatabaseConfig) *gorm.DB {
	dsn := cfg.DSN()
	redacted := dsn
	if cfg.Password != "" {
		redacted = strings.ReplaceAll(dsn, cfg.Password, "*****")
	}
	log.Debug().Str("dsn", redacted).Msg("connecting to postgres")

	db, err := OpenDB(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to the database")
	}

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	log.Info().Str("database", cfg.Name).Msg("database ready")

	return db
}

func OpenDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.IngredientAmount{},
		&models.Recipe{},
		&models.Favorite{},
		&models.Basket{},
		&models.Follow{},
	)
}
