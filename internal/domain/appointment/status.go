package appointment

import "github.com/BruksfildServices01/barber-pos/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusPaid      Status = "Paid"
	StatusCancelled Status = "Cancelled"
)

func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanCancel rejects collected and already cancelled appointments with distinct codes.
func CanCancel(current Status) error {
	switch current {
	case StatusPending:
		return nil
	case StatusPaid:
		return httperr.ErrBusiness(httperr.CodeAlreadyPaid)
	case StatusCancelled:
		return httperr.ErrBusiness(httperr.CodeAlreadyCancelled)
	default:
		return httperr.ErrBusiness(httperr.CodeAlreadyClosed)
	}
}

// CanPay allows a single payment, only while Pending.
func CanPay(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeAlreadyClosed)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
