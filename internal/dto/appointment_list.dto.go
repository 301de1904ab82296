package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type AppointmentListDTO struct {
	ID          uint            `json:"id"`
	Date        string          `json:"date"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	Status      string          `json:"status"`
	ClientID    uint            `json:"client_id"`
	ClientName  string          `json:"client_name"`
	WalkIn      bool            `json:"walk_in"`
	ServiceName string          `json:"service_name"`
	BarberID    uint            `json:"barber_id"`
	BarberName  string          `json:"barber_name"`
	Total       decimal.Decimal `json:"total"`
	Notes       string          `json:"notes,omitempty"`
}

func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:          ap.ID,
		Date:        ap.Date,
		StartTime:   ap.StartTime,
		EndTime:     ap.EndTime,
		Status:      ap.Status,
		ClientID:    ap.ClientID,
		ClientName:  ap.Client.Name,
		WalkIn:      ap.Client.WalkIn,
		ServiceName: ap.Service.Name,
		BarberID:    ap.BarberID,
		BarberName:  ap.Barber.Name,
		Total:       ap.Total,
		Notes:       ap.Notes,
	}
}

type PaymentDTO struct {
	Amount    decimal.Decimal `json:"amount"`
	Tendered  decimal.Decimal `json:"tendered"`
	Change    decimal.Decimal `json:"change"`
	Method    string          `json:"method"`
	Reference string          `json:"reference,omitempty"`
	PaidOn    string          `json:"paid_on"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewPaymentDTO(p models.Payment) PaymentDTO {
	change := p.Tendered.Sub(p.Amount)
	if change.IsNegative() {
		change = decimal.Zero
	}
	return PaymentDTO{
		Amount:    p.Amount,
		Tendered:  p.Tendered,
		Change:    change,
		Method:    p.Method,
		Reference: p.Reference,
		PaidOn:    p.PaidOn,
		CreatedAt: p.CreatedAt,
	}
}

// AppointmentDetailDTO is the ticket view of a single appointment.
type AppointmentDetailDTO struct {
	AppointmentListDTO
	ClientPhone     string      `json:"client_phone,omitempty"`
	ServiceDuration int         `json:"service_duration_min"`
	CancelledAt     *time.Time  `json:"cancelled_at,omitempty"`
	PaidAt          *time.Time  `json:"paid_at,omitempty"`
	Payment         *PaymentDTO `json:"payment,omitempty"`
}
