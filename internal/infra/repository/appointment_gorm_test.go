package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-pos/internal/domain/record"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/testutil"
)

func TestAppointmentRepository_ListActiveForBarber(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(gdb)
	ctx := context.Background()

	pending := seedAppointment(t, gdb, "Pending")

	cancelled := pending
	cancelled.ID = 0
	cancelled.StartTime, cancelled.EndTime = "11:00", "11:30"
	cancelled.Status = "Cancelled"
	require.NoError(t, repo.CreateAppointment(ctx, &cancelled))

	other := pending
	other.ID = 0
	other.BarberID = testutil.Barber(t, gdb, "Fran").ID
	require.NoError(t, repo.CreateAppointment(ctx, &other))

	apps, err := repo.ListActiveForBarber(ctx, pending.BarberID, "2026-10-15")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, pending.ID, apps[0].ID)
	assert.Equal(t, "10:00", apps[0].StartTime)
}

func TestAppointmentRepository_DetailAndHistory(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(gdb)
	ctx := context.Background()

	ap := seedAppointment(t, gdb, "Paid")

	detail, err := repo.GetAppointmentDetail(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "María", detail.Client.Name)
	assert.Equal(t, "Corte", detail.Service.Name)
	assert.Equal(t, "Ale", detail.Barber.Name)

	history, err := repo.ListClientHistory(ctx, ap.ClientID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = repo.GetAppointment(ctx, 4242)
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestAppointmentRepository_ListBetweenOrdersByStart(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(gdb)
	ctx := context.Background()

	late := seedAppointment(t, gdb, "Pending")
	require.NoError(t, gdb.Model(&models.Appointment{}).
		Where("id = ?", late.ID).
		Updates(map[string]any{"start_time": "15:00", "end_time": "15:30"}).Error)

	early := late
	early.ID = 0
	early.StartTime, early.EndTime = "09:00", "09:30"
	require.NoError(t, repo.CreateAppointment(ctx, &early))

	apps, err := repo.ListBetween(ctx, "2026-10-15", "2026-10-15", 0)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "09:00", apps[0].StartTime)
	assert.Equal(t, "15:00", apps[1].StartTime)
	assert.Equal(t, "María", apps[0].Client.Name)
}

func TestAppointmentRepository_MarkCancelledIsGuarded(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(gdb)
	ctx := context.Background()

	pending := seedAppointment(t, gdb, "Pending")

	ok, err := repo.MarkCancelled(ctx, pending.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkCancelled(ctx, pending.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.GetAppointment(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", stored.Status)
	assert.NotNil(t, stored.CancelledAt)
}

func TestAppointmentRepository_SetClient(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(gdb)
	ctx := context.Background()

	ap := seedAppointment(t, gdb, "Paid")
	other := testutil.CreateClient(t, gdb, "José", "+584241112233")

	require.NoError(t, repo.SetClient(ctx, ap.ID, other.ID))

	stored, err := repo.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, stored.ClientID)

	assert.ErrorIs(t, repo.SetClient(ctx, 999, other.ID), record.ErrNotFound)
}
