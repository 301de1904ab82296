package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the single charge of an appointment. For mixed payments the
// partial tenders live only in Reference.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"not null;uniqueIndex" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Tendered  decimal.Decimal `gorm:"type:decimal(12,2)" json:"tendered"`
	Method    string          `gorm:"size:20;not null;index" json:"method"`
	Reference string          `gorm:"type:text" json:"reference"`

	// shop-local calendar day, kept for portable grouping
	PaidOn string `gorm:"size:10;not null;index" json:"paid_on"`

	CreatedAt time.Time `json:"created_at"`
}
