package db

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-pos/internal/config"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

var shop = config.ShopConfig{
	Timezone:         "America/Caracas",
	WalkInClientName: "Público General",
}

func memoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func TestMigrate_SeedsAreIdempotent(t *testing.T) {
	gdb := memoryDB(t)

	require.NoError(t, Migrate(gdb, shop))
	require.NoError(t, Migrate(gdb, shop))

	var barbers []models.Barber
	require.NoError(t, gdb.Order("id").Find(&barbers).Error)
	require.Len(t, barbers, 2)
	assert.Equal(t, LegacyBarberID, barbers[0].ID)
	assert.Equal(t, "Ale", barbers[0].Name)
	assert.Equal(t, "Fran", barbers[1].Name)

	var walkIns int64
	require.NoError(t, gdb.Model(&models.Client{}).Where("walk_in = ?", true).Count(&walkIns).Error)
	assert.EqualValues(t, 1, walkIns)

	var opening models.Setting
	require.NoError(t, gdb.First(&opening, "key = ?", models.SettingOpening).Error)
	assert.Equal(t, "08:00", opening.Value)
}

func TestMigrate_KeepsCustomSettings(t *testing.T) {
	gdb := memoryDB(t)
	require.NoError(t, Migrate(gdb, shop))

	require.NoError(t, gdb.Model(&models.Setting{}).
		Where("key = ?", models.SettingClosing).
		Update("value", "20:00").Error)

	require.NoError(t, Migrate(gdb, shop))

	var closing models.Setting
	require.NoError(t, gdb.First(&closing, "key = ?", models.SettingClosing).Error)
	assert.Equal(t, "20:00", closing.Value)
}

func TestMigrate_BackfillsLegacyBarber(t *testing.T) {
	gdb := memoryDB(t)
	require.NoError(t, Migrate(gdb, shop))

	require.NoError(t, gdb.Exec(`
		INSERT INTO appointments (client_id, service_id, barber_id, date, start_time, end_time, total, status)
		VALUES (1, 1, 0, '2024-01-10', '10:00', '10:30', 15, 'Paid')
	`).Error)

	require.NoError(t, Migrate(gdb, shop))

	var ap models.Appointment
	require.NoError(t, gdb.First(&ap).Error)
	assert.Equal(t, LegacyBarberID, ap.BarberID)
}

func TestMigrate_FlagsLegacyWalkInByName(t *testing.T) {
	gdb := memoryDB(t)
	require.NoError(t, gdb.AutoMigrate(&models.Client{}))

	legacy := models.Client{Name: "Público General"}
	require.NoError(t, gdb.Create(&legacy).Error)

	require.NoError(t, Migrate(gdb, shop))

	var walkIns []models.Client
	require.NoError(t, gdb.Where("walk_in = ?", true).Find(&walkIns).Error)
	require.Len(t, walkIns, 1)
	assert.Equal(t, legacy.ID, walkIns[0].ID)
}

func TestDialector_RejectsUnknownDriver(t *testing.T) {
	_, err := dialector(config.DBConfig{Driver: "oracle"})
	assert.Error(t, err)
}
