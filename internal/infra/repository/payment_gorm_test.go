package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-pos/internal/domain/record"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/testutil"
)

func seedAppointment(t *testing.T, gdb *gorm.DB, status string) models.Appointment {
	t.Helper()

	client := testutil.CreateClient(t, gdb, "María", "+584141234567")
	service := testutil.CreateService(t, gdb, "Corte", "15", 30)
	barber := testutil.Barber(t, gdb, "Ale")

	ap := models.Appointment{
		ClientID:  client.ID,
		ServiceID: service.ID,
		BarberID:  barber.ID,
		Date:      "2026-10-15",
		StartTime: "10:00",
		EndTime:   "10:30",
		Total:     service.Price,
		Status:    status,
	}
	require.NoError(t, gdb.Create(&ap).Error)
	return ap
}

func TestRegisterPayment_PaysPendingAppointment(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewPaymentGormRepository(gdb)
	ap := seedAppointment(t, gdb, "Pending")

	paidAt := time.Date(2026, 10, 15, 10, 40, 0, 0, time.UTC)
	p := &models.Payment{
		AppointmentID: ap.ID,
		Amount:        decimal.RequireFromString("15"),
		Tendered:      decimal.RequireFromString("20"),
		Method:        "Cash-USD",
		PaidOn:        "2026-10-15",
	}
	require.NoError(t, repo.RegisterPayment(context.Background(), p, paidAt))
	assert.NotZero(t, p.ID)

	var stored models.Appointment
	require.NoError(t, gdb.First(&stored, ap.ID).Error)
	assert.Equal(t, "Paid", stored.Status)
	require.NotNil(t, stored.PaidAt)
	assert.True(t, paidAt.Equal(*stored.PaidAt))

	got, err := repo.GetPaymentForAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cash-USD", got.Method)
}

func TestRegisterPayment_ClosedAppointmentMutatesNothing(t *testing.T) {
	for _, status := range []string{"Paid", "Cancelled"} {
		t.Run(status, func(t *testing.T) {
			gdb := testutil.NewDB(t)
			repo := NewPaymentGormRepository(gdb)
			ap := seedAppointment(t, gdb, status)

			err := repo.RegisterPayment(context.Background(), &models.Payment{
				AppointmentID: ap.ID,
				Amount:        decimal.RequireFromString("15"),
				Method:        "Cash-USD",
				PaidOn:        "2026-10-15",
			}, time.Now())
			assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyClosed))

			var payments int64
			require.NoError(t, gdb.Model(&models.Payment{}).Count(&payments).Error)
			assert.Zero(t, payments)

			var stored models.Appointment
			require.NoError(t, gdb.First(&stored, ap.ID).Error)
			assert.Equal(t, status, stored.Status)
		})
	}
}

func TestRegisterPayment_MissingAppointment(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewPaymentGormRepository(gdb)

	err := repo.RegisterPayment(context.Background(), &models.Payment{AppointmentID: 999}, time.Now())
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestRegisterPayment_RollsBackWhenStatusUpdateFails(t *testing.T) {
	gdb, mock := mockDB(t)
	repo := NewPaymentGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "appointments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(7, "Pending"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "payments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "appointments"`)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.RegisterPayment(context.Background(), &models.Payment{
		AppointmentID: 7,
		Amount:        decimal.RequireFromString("15"),
		Method:        "Cash-USD",
		PaidOn:        "2026-10-15",
	}, time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterPayment_RollsBackWhenRaceIsLost(t *testing.T) {
	gdb, mock := mockDB(t)
	repo := NewPaymentGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "appointments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(7, "Pending"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "payments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "appointments"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.RegisterPayment(context.Background(), &models.Payment{
		AppointmentID: 7,
		Amount:        decimal.RequireFromString("15"),
		Method:        "Cash-USD",
		PaidOn:        "2026-10-15",
	}, time.Now())

	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyClosed))
	assert.NoError(t, mock.ExpectationsWereMet())
}
