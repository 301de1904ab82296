package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	appointment "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/report"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) PaymentsByMethod(
	ctx context.Context,
	date string,
) ([]domain.MethodTotal, error) {

	var rows []domain.MethodTotal
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("method, SUM(amount) AS total, COUNT(*) AS count").
		Where("paid_on = ?", date).
		Group("method").
		Order("method ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("payments by method: %w", err)
	}
	return rows, nil
}

func (r *ReportGormRepository) PaidByBarber(
	ctx context.Context,
	from, to string,
) ([]domain.BarberTotal, error) {

	var rows []domain.BarberTotal
	if err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select("a.barber_id AS barber_id, b.name AS barber, SUM(a.total) AS total, COUNT(a.id) AS count").
		Joins("JOIN barbers b ON b.id = a.barber_id").
		Where("a.status = ? AND a.date BETWEEN ? AND ?", string(appointment.StatusPaid), from, to).
		Group("a.barber_id, b.name").
		Order("total DESC").
		Order("b.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("paid by barber: %w", err)
	}
	return rows, nil
}

func (r *ReportGormRepository) TopServices(
	ctx context.Context,
	limit int,
) ([]domain.ServiceCount, error) {

	var rows []domain.ServiceCount
	if err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select("s.id AS service_id, s.name AS service, COUNT(a.id) AS count").
		Joins("JOIN services s ON s.id = a.service_id").
		Where("a.status = ?", string(appointment.StatusPaid)).
		Group("s.id, s.name").
		Order("count DESC").
		Order("s.name ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("top services: %w", err)
	}
	return rows, nil
}

func (r *ReportGormRepository) PaymentsByDay(
	ctx context.Context,
	from, to string,
) ([]domain.DayTotal, error) {

	var rows []domain.DayTotal
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("paid_on AS date, SUM(amount) AS total").
		Where("paid_on BETWEEN ? AND ?", from, to).
		Group("paid_on").
		Order("paid_on ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("payments by day: %w", err)
	}
	return rows, nil
}

func (r *ReportGormRepository) SalesOn(
	ctx context.Context,
	date string,
) (decimal.Decimal, error) {

	var total decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("paid_on = ?", date).
		Row().
		Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sales on %s: %w", date, err)
	}
	return total, nil
}

func (r *ReportGormRepository) ActiveAppointmentsOn(
	ctx context.Context,
	date string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND status IN ?", date, []string{
			string(appointment.StatusPending),
			string(appointment.StatusPaid),
		}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("appointments on %s: %w", date, err)
	}
	return count, nil
}

var _ domain.Repository = (*ReportGormRepository)(nil)

