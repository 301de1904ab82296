package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/testutil"
)

type reportFixture struct {
	client models.Client
	corte  models.Service
	barba  models.Service
	ale    models.Barber
	fran   models.Barber
}

func newReportFixture(t *testing.T, gdb *gorm.DB) reportFixture {
	return reportFixture{
		client: testutil.CreateClient(t, gdb, "María", "+584141234567"),
		corte:  testutil.CreateService(t, gdb, "Corte", "15", 30),
		barba:  testutil.CreateService(t, gdb, "Barba", "8", 20),
		ale:    testutil.Barber(t, gdb, "Ale"),
		fran:   testutil.Barber(t, gdb, "Fran"),
	}
}

func (f reportFixture) add(t *testing.T, gdb *gorm.DB, barber models.Barber, svc models.Service, date, status, method string) {
	t.Helper()

	ap := models.Appointment{
		ClientID:  f.client.ID,
		ServiceID: svc.ID,
		BarberID:  barber.ID,
		Date:      date,
		StartTime: "10:00",
		EndTime:   "10:30",
		Total:     svc.Price,
		Status:    status,
	}
	require.NoError(t, gdb.Omit("Client", "Service", "Barber").Create(&ap).Error)

	if status != "Paid" {
		return
	}
	require.NoError(t, gdb.Omit("Appointment").Create(&models.Payment{
		AppointmentID: ap.ID,
		Amount:        svc.Price,
		Tendered:      svc.Price,
		Method:        method,
		PaidOn:        date,
	}).Error)
}

func TestReportRepository_Aggregations(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewReportGormRepository(gdb)
	ctx := context.Background()
	f := newReportFixture(t, gdb)

	f.add(t, gdb, f.ale, f.corte, "2026-10-15", "Paid", "Cash-USD")
	f.add(t, gdb, f.ale, f.corte, "2026-10-15", "Paid", "Zelle")
	f.add(t, gdb, f.fran, f.barba, "2026-10-15", "Paid", "Cash-USD")
	f.add(t, gdb, f.fran, f.corte, "2026-10-15", "Pending", "")
	f.add(t, gdb, f.fran, f.corte, "2026-10-15", "Cancelled", "")
	f.add(t, gdb, f.ale, f.corte, "2026-10-12", "Paid", "Card")

	t.Run("closing by method", func(t *testing.T) {
		rows, err := repo.PaymentsByMethod(ctx, "2026-10-15")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Cash-USD", rows[0].Method)
		assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(23)))
		assert.EqualValues(t, 2, rows[0].Count)
		assert.Equal(t, "Zelle", rows[1].Method)
	})

	t.Run("paid by barber", func(t *testing.T) {
		rows, err := repo.PaidByBarber(ctx, "2026-10-01", "2026-10-31")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Ale", rows[0].Barber)
		assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(45)))
		assert.EqualValues(t, 3, rows[0].Count)
		assert.Equal(t, "Fran", rows[1].Barber)
		assert.True(t, rows[1].Total.Equal(decimal.NewFromInt(8)))
	})

	t.Run("top services", func(t *testing.T) {
		rows, err := repo.TopServices(ctx, 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Corte", rows[0].Service)
		assert.EqualValues(t, 3, rows[0].Count)
	})

	t.Run("payments by day", func(t *testing.T) {
		rows, err := repo.PaymentsByDay(ctx, "2026-10-09", "2026-10-15")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "2026-10-12", rows[0].Date)
		assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(15)))
		assert.True(t, rows[1].Total.Equal(decimal.NewFromInt(38)))
	})

	t.Run("kpis", func(t *testing.T) {
		sales, err := repo.SalesOn(ctx, "2026-10-15")
		require.NoError(t, err)
		assert.True(t, sales.Equal(decimal.NewFromInt(38)))

		count, err := repo.ActiveAppointmentsOn(ctx, "2026-10-15")
		require.NoError(t, err)
		assert.EqualValues(t, 4, count)

		empty, err := repo.SalesOn(ctx, "2020-01-01")
		require.NoError(t, err)
		assert.True(t, empty.IsZero())
	})
}
