package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-pos/internal/domain/record"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/testutil"
)

func TestCatalogRepository_ListClientsHidesWalkIn(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewCatalogGormRepository(gdb)
	ctx := context.Background()

	testutil.CreateClient(t, gdb, "María Pérez", "+584141234567")
	testutil.CreateClient(t, gdb, "José Rivas", "+584241112233")

	all, err := repo.ListClients(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, c := range all {
		assert.False(t, c.WalkIn)
	}

	byName, err := repo.ListClients(ctx, "maría", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)

	byPhone, err := repo.ListClients(ctx, "424111", "424111")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "José Rivas", byPhone[0].Name)

	typed, err := repo.ListClients(ctx, "0414-1234567", "584141234567")
	require.NoError(t, err)
	require.Len(t, typed, 1)
	assert.Equal(t, "María Pérez", typed[0].Name)

	walkIn, err := repo.GetWalkInClient(ctx)
	require.NoError(t, err)
	assert.True(t, walkIn.WalkIn)
}

func TestCatalogRepository_DeactivatedServiceIsHidden(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewCatalogGormRepository(gdb)
	ctx := context.Background()

	s := testutil.CreateService(t, gdb, "Barba", "8", 20)
	s.Active = false
	require.NoError(t, repo.UpdateService(ctx, &s))

	services, err := repo.ListActiveServices(ctx)
	require.NoError(t, err)
	assert.Empty(t, services)

	stored, err := repo.GetService(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestCatalogRepository_Barbers(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewCatalogGormRepository(gdb)
	ctx := context.Background()

	found, err := repo.FindBarberByName(ctx, " ale ")
	require.NoError(t, err)
	assert.Equal(t, "Ale", found.Name)

	_, err = repo.FindBarberByName(ctx, "Nadie")
	assert.ErrorIs(t, err, record.ErrNotFound)

	found.Active = false
	require.NoError(t, repo.UpdateBarber(ctx, found))

	active, err := repo.ListActiveBarbers(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Fran", active[0].Name)
}

func TestCatalogRepository_Settings(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewCatalogGormRepository(gdb)
	ctx := context.Background()

	opening, err := repo.GetSetting(ctx, models.SettingOpening)
	require.NoError(t, err)
	assert.Equal(t, "08:00", opening)

	require.NoError(t, repo.SaveSettings(ctx, map[string]string{
		models.SettingOpening: "09:00",
		models.SettingClosing: "19:30",
	}))

	closing, err := repo.GetSetting(ctx, models.SettingClosing)
	require.NoError(t, err)
	assert.Equal(t, "19:30", closing)

	_, err = repo.GetSetting(ctx, "missing")
	assert.ErrorIs(t, err, record.ErrNotFound)
}
