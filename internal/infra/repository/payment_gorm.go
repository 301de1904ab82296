package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appointment "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/payment"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) RegisterPayment(
	ctx context.Context,
	p *models.Payment,
	paidAt time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ap models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ap, p.AppointmentID).Error; err != nil {
			return notFound(err)
		}

		if err := appointment.MarkPaid(&ap, paidAt); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		// a payment that lost the race matches zero rows here
		res := tx.Model(&models.Appointment{}).
			Where("id = ? AND status = ?", p.AppointmentID, string(appointment.StatusPending)).
			Updates(map[string]any{
				"status":  ap.Status,
				"paid_at": ap.PaidAt,
			})
		if res.Error != nil {
			return fmt.Errorf("mark appointment %d paid: %w", p.AppointmentID, res.Error)
		}
		if res.RowsAffected != 1 {
			return httperr.ErrBusiness(httperr.CodeAlreadyClosed)
		}

		return nil
	})
}

func (r *PaymentGormRepository) GetPaymentForAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

var _ domain.Repository = (*PaymentGormRepository)(nil)
