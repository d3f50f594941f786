package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens a gorm connection and migrates the given
// models. Migration errors caused by pre-existing tables are tolerated so
// restarts against a provisioned database stay quiet.
func NewPostgresConnection(dburi string, models ...interface{}) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dburi), &gorm.Config{
		SkipDefaultTransaction: true,
		AllowGlobalUpdate:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(models...); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return db, nil
		}
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
