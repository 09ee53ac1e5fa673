package services

import (
	"context"
	"strings"

	"travel-backend/apperrors"
	"travel-backend/models"

	"gorm.io/gorm"
)

const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)

// ActivityRecorder appends one entry to the activity feed.
type ActivityRecorder interface {
	Record(ctx context.Context, in RecordActivityInput) (*models.Activity, error)
}

type RecordActivityInput struct {
	UserID        uint
	Type          string
	Content       string
	DestinationID *uint
}

type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

func (s *ActivityService) Record(ctx context.Context, in RecordActivityInput) (*models.Activity, error) {
	in.Type = strings.TrimSpace(in.Type)
	if in.UserID == 0 || in.Type == "" {
		return nil, apperrors.Validation("userId and type are required")
	}
	if in.DestinationID != nil && *in.DestinationID == 0 {
		in.DestinationID = nil
	}

	a := models.Activity{
		UserID:        in.UserID,
		Type:          in.Type,
		Content:       strings.TrimSpace(in.Content),
		DestinationID: in.DestinationID,
	}
	if err := s.DB.WithContext(ctx).Create(&a).Error; err != nil {
		if isForeignKeyError(err) {
			return nil, apperrors.Validation("unknown user or destination")
		}
		return nil, apperrors.Internal("failed to log activity", err)
	}
	return &a, nil
}

// Recent returns the newest activities of a user, newest first. The feed is
// only bounded here; nothing trims it on write.
func (s *ActivityService) Recent(ctx context.Context, userID uint, limit int) ([]models.Activity, error) {
	if userID == 0 {
		return nil, apperrors.Validation("userId is required")
	}
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	out := []models.Activity{}
	err := s.DB.WithContext(ctx).
		Preload("Destination").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch activities", err)
	}
	return out, nil
}
