package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rrparlour/parlour-booking/internal/config"
	"github.com/rrparlour/parlour-booking/internal/models"
	"github.com/rrparlour/parlour-booking/internal/security"
)

// Seeded defaults: one admin account and the landing-page tagline, inserted
// only while their tables are empty.
const (
	DefaultAdminLoginID  = "rradmin"
	DefaultAdminName     = "R&R Admin"
	DefaultAdminPassword = "admin123"
	DefaultTagline       = "Best styles for modern men"
)

func NewDB(cfg *config.Config) *gorm.DB {
	gdb, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Init(gdb); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	return gdb
}

// Init migrates the schema and seeds default rows. Safe to run repeatedly.
func Init(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&models.Customer{},
		&models.ShopOwner{},
		&models.Hairstyle{},
		&models.Booking{},
		&models.Admin{},
		&models.Setting{},
	); err != nil {
		return err
	}

	var adminCount int64
	if err := gdb.Model(&models.Admin{}).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		hash, err := security.HashPassword(DefaultAdminPassword)
		if err != nil {
			return err
		}
		admin := models.Admin{
			LoginID:      DefaultAdminLoginID,
			Name:         DefaultAdminName,
			PasswordHash: hash,
		}
		if err := gdb.Create(&admin).Error; err != nil {
			return err
		}
	}

	var settingCount int64
	if err := gdb.Model(&models.Setting{}).Count(&settingCount).Error; err != nil {
		return err
	}
	if settingCount == 0 {
		setting := models.Setting{
			ID:      models.SettingsRowID,
			Tagline: DefaultTagline,
		}
		if err := gdb.Create(&setting).Error; err != nil {
			return err
		}
	}

	return nil
}
