package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusPending))
	assert.True(t, httperr.IsBusiness(CanCancel(StatusPaid), httperr.CodeAlreadyPaid))
	assert.True(t, httperr.IsBusiness(CanCancel(StatusCancelled), httperr.CodeAlreadyCancelled))
}

func TestCanPay(t *testing.T) {
	assert.NoError(t, CanPay(StatusPending))
	assert.True(t, httperr.IsBusiness(CanPay(StatusPaid), httperr.CodeAlreadyClosed))
	assert.True(t, httperr.IsBusiness(CanPay(StatusCancelled), httperr.CodeAlreadyClosed))
}

func TestCancel_Transitions(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(InitialStatus())}

	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)

	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyCancelled))

	err = MarkPaid(ap, now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyClosed))
	assert.Nil(t, ap.PaidAt)
}

func TestMarkPaid_IsTerminal(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, MarkPaid(ap, now))
	assert.True(t, Status(ap.Status).IsTerminal())

	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyPaid))
	assert.Equal(t, string(StatusPaid), ap.Status)
}
