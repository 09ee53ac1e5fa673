package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-backend/apperrors"
	"travel-backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BookingService is the booking ledger. A successful create is followed by a
// best-effort "booking" activity; the two writes are not transactional.
type BookingService struct {
	DB         *gorm.DB
	Catalog    DestinationResolver
	Activities ActivityRecorder
	Log        *zap.Logger
}

func NewBookingService(db *gorm.DB, catalog DestinationResolver, activities ActivityRecorder, log *zap.Logger) *BookingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingService{DB: db, Catalog: catalog, Activities: activities, Log: log}
}

type CreateBookingInput struct {
	UserID        uint
	DestinationID uint
	StartDate     string
	EndDate       string
	Travelers     int
}

var tripDateLayouts = []string{"2006-01-02", time.RFC3339}

func parseTripDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range tripDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

// calendarDay drops the clock so a timestamp and a bare date on the same day compare equal.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (in CreateBookingInput) validate() (time.Time, time.Time, error) {
	missing := map[string]string{}
	if in.UserID == 0 {
		missing["userId"] = "is required"
	}
	if in.DestinationID == 0 {
		missing["destination"] = "is required"
	}
	if strings.TrimSpace(in.StartDate) == "" {
		missing["startDate"] = "is required"
	}
	if strings.TrimSpace(in.EndDate) == "" {
		missing["endDate"] = "is required"
	}
	if in.Travelers == 0 {
		missing["travelers"] = "is required"
	}
	if len(missing) > 0 {
		return time.Time{}, time.Time{}, apperrors.ValidationFields("all booking fields are required", missing)
	}

	if in.Travelers < 1 {
		return time.Time{}, time.Time{}, apperrors.Validation("travelers must be a positive integer")
	}
	start, err := parseTripDate(in.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ValidationFields("invalid booking dates", map[string]string{"startDate": err.Error()})
	}
	end, err := parseTripDate(in.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ValidationFields("invalid booking dates", map[string]string{"endDate": err.Error()})
	}
	if calendarDay(end).Before(calendarDay(start)) {
		return time.Time{}, time.Time{}, apperrors.Validation("endDate must not be before startDate")
	}
	return start, end, nil
}

// CreateBooking stores a Confirmed booking. The destination reference is not
// pre-checked: the store's foreign key rejects a dangling id.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	start, end, err := in.validate()
	if err != nil {
		return nil, err
	}

	bk := &models.Booking{
		UserID:        in.UserID,
		DestinationID: in.DestinationID,
		StartDate:     start,
		EndDate:       end,
		Travelers:     in.Travelers,
		Status:        models.BookingStatusConfirmed,
	}
	if err := s.DB.WithContext(ctx).Create(bk).Error; err != nil {
		if isForeignKeyError(err) {
			return nil, apperrors.Validation("unknown user or destination")
		}
		return nil, apperrors.Internal("failed to create booking", err)
	}

	if dest := s.recordBookingActivity(ctx, bk); dest != nil {
		bk.Destination = dest
	}
	return bk, nil
}

// recordBookingActivity never fails the booking; problems are only logged.
func (s *BookingService) recordBookingActivity(ctx context.Context, bk *models.Booking) *models.Destination {
	log := s.Log.With(zap.Uint("booking_id", bk.ID), zap.Uint("destination_id", bk.DestinationID))

	dest, err := s.Catalog.GetDestination(ctx, bk.DestinationID)
	if err != nil {
		log.Warn("booking activity skipped: destination name unresolved", zap.Error(err))
		return nil
	}

	destID := dest.ID
	_, err = s.Activities.Record(ctx, RecordActivityInput{
		UserID:        bk.UserID,
		Type:          models.ActivityTypeBooking,
		Content:       fmt.Sprintf("Booked a trip to %s", dest.Name),
		DestinationID: &destID,
	})
	if err != nil {
		log.Warn("booking activity not recorded", zap.Error(err))
	}
	return dest
}

func (s *BookingService) ListBookingsForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	if userID == 0 {
		return nil, apperrors.Validation("userId is required")
	}

	out := []models.Booking{}
	err := s.DB.WithContext(ctx).
		Preload("Destination").
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, apperrors.Internal("failed to retrieve bookings", err)
	}
	return out, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	if id == 0 {
		return nil, apperrors.Validation("booking id is required")
	}

	var bk models.Booking
	if err := s.DB.WithContext(ctx).Preload("Destination").Preload("User").First(&bk, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFoundf("booking %d not found", id)
		}
		return nil, apperrors.Internal("failed to retrieve booking", err)
	}
	return &bk, nil
}
