package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-pos/internal/domain/record"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// notFound maps gorm's sentinel to the storage-neutral one.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Omit("Client", "Service", "Barber").Create(ap).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentDetail(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Barber").
		First(&ap, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) MarkCancelled(
	ctx context.Context,
	id uint,
	at time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, string(domain.StatusPending)).
		Updates(map[string]any{
			"status":       string(domain.StatusCancelled),
			"cancelled_at": at,
		})
	if res.Error != nil {
		return false, fmt.Errorf("cancel appointment %d: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *AppointmentGormRepository) SetClient(
	ctx context.Context,
	id uint,
	clientID uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("client_id", clientID)
	if res.Error != nil {
		return fmt.Errorf("reassign appointment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return record.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveForBarber(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID, date, string(domain.StatusCancelled),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list appointments of barber %d: %w", barberID, err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListBetween(
	ctx context.Context,
	from string,
	to string,
	barberID uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Barber").
		Where("date BETWEEN ? AND ?", from, to)

	if barberID != 0 {
		q = q.Where("barber_id = ?", barberID)
	}

	var apps []models.Appointment
	if err := q.
		Order("date ASC").
		Order("start_time ASC").
		Order("barber_id ASC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list appointments %s..%s: %w", from, to, err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListClientHistory(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		Where("client_id = ? AND status <> ?", clientID, string(domain.StatusCancelled)).
		Order("date DESC").
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("client %d history: %w", clientID, err)
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
