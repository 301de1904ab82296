package db

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-pos/internal/config"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// LegacyBarberID owns every appointment created before barbers existed.
const LegacyBarberID uint = 1

var seedBarbers = []string{"Ale", "Fran"}

func dialector(cfg config.DBConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "sqlite", "":
		dsn := cfg.URL
		if !strings.Contains(dsn, "_foreign_keys") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "_foreign_keys=on"
		}
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(cfg.URL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// NewDB opens the configured store, migrates it and seeds reference rows.
func NewDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	d, err := dialector(cfg.DB)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if strings.EqualFold(cfg.DB.Driver, "postgres") {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	} else {
		// sqlite allows one writer
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db, cfg.Shop); err != nil {
		return nil, err
	}

	log.Info("database ready", "driver", cfg.DB.Driver)
	return db, nil
}

// Migrate applies the additive schema and idempotent seeds.
func Migrate(db *gorm.DB, shop config.ShopConfig) error {
	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.Payment{},
		&models.Setting{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range seedBarbers {
			b := models.Barber{Name: name}
			if err := tx.Where("name = ?", name).
				Attrs(models.Barber{Active: true}).
				FirstOrCreate(&b).Error; err != nil {
				return fmt.Errorf("seed barber %s: %w", name, err)
			}
		}

		if err := tx.Model(&models.Appointment{}).
			Where("barber_id IS NULL OR barber_id = 0").
			Update("barber_id", LegacyBarberID).Error; err != nil {
			return fmt.Errorf("backfill barber: %w", err)
		}

		if err := seedWalkIn(tx, shop); err != nil {
			return err
		}

		for key, value := range map[string]string{
			models.SettingOpening: "08:00",
			models.SettingClosing: "18:00",
		} {
			s := models.Setting{Key: key}
			if err := tx.Where("key = ?", key).
				Attrs(models.Setting{Value: value}).
				FirstOrCreate(&s).Error; err != nil {
				return fmt.Errorf("seed setting %s: %w", key, err)
			}
		}
		return nil
	})
}

// seedWalkIn flags the legacy client named like the walk-in, or creates one.
func seedWalkIn(tx *gorm.DB, shop config.ShopConfig) error {
	var count int64
	if err := tx.Model(&models.Client{}).Where("walk_in = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("seed walk-in: %w", err)
	}
	if count > 0 {
		return nil
	}

	res := tx.Model(&models.Client{}).
		Where("name = ?", shop.WalkInClientName).
		Update("walk_in", true)
	if res.Error != nil {
		return fmt.Errorf("seed walk-in: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	walkIn := models.Client{
		Name:         shop.WalkInClientName,
		WalkIn:       true,
		RegisteredOn: timezone.DateOf(timezone.NowIn(shop.Timezone)),
	}
	if err := tx.Create(&walkIn).Error; err != nil {
		return fmt.Errorf("seed walk-in: %w", err)
	}
	return nil
}
