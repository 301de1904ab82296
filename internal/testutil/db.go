package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-pos/internal/config"
	"github.com/BruksfildServices01/barber-pos/internal/db"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

func ShopConfig() config.ShopConfig {
	return config.ShopConfig{
		Timezone:          "America/Caracas",
		BaseCurrency:      "USD",
		LocalCurrency:     "VES",
		CommissionPercent: 50,
		WalkInClientName:  "Público General",
		PhoneRegion:       "VE",
		TopServicesLimit:  5,
	}
}

// NewDB returns a private, migrated and seeded in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb, ShopConfig()))
	return gdb
}

func Barber(t *testing.T, gdb *gorm.DB, name string) models.Barber {
	t.Helper()
	var b models.Barber
	require.NoError(t, gdb.Where("name = ?", name).First(&b).Error)
	return b
}

func WalkIn(t *testing.T, gdb *gorm.DB) models.Client {
	t.Helper()
	var c models.Client
	require.NoError(t, gdb.Where("walk_in = ?", true).First(&c).Error)
	return c
}

func CreateClient(t *testing.T, gdb *gorm.DB, name, phone string) models.Client {
	t.Helper()
	c := models.Client{Name: name, Phone: phone, RegisteredOn: "2026-10-01"}
	require.NoError(t, gdb.Create(&c).Error)
	return c
}

func CreateService(t *testing.T, gdb *gorm.DB, name, price string, minutes int) models.Service {
	t.Helper()
	s := models.Service{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		DurationMin: minutes,
		Active:      true,
	}
	require.NoError(t, gdb.Create(&s).Error)
	return s
}
