package services

import (
	"context"
	"strings"

	"travel-backend/apperrors"
	"travel-backend/models"

	"gorm.io/gorm"
)

// DestinationResolver is the slice of the catalog the booking and favorite
// flows need to name a destination in the activity feed.
type DestinationResolver interface {
	GetDestination(ctx context.Context, id uint) (*models.Destination, error)
}

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

type DestinationFilter struct {
	Type      string
	MinRating *float64
}

func (s *CatalogService) ListDestinations(ctx context.Context, f DestinationFilter) ([]models.Destination, error) {
	q := s.DB.WithContext(ctx).Model(&models.Destination{})
	if t := strings.TrimSpace(f.Type); t != "" {
		q = q.Where("LOWER(type) = ?", strings.ToLower(t))
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}

	out := []models.Destination{}
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, apperrors.Internal("failed to list destinations", err)
	}
	return out, nil
}

func (s *CatalogService) GetDestination(ctx context.Context, id uint) (*models.Destination, error) {
	if id == 0 {
		return nil, apperrors.Validation("destination id is required")
	}

	var d models.Destination
	if err := s.DB.WithContext(ctx).First(&d, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFoundf("destination %d not found", id)
		}
		return nil, apperrors.Internal("failed to look up destination", err)
	}
	return &d, nil
}

func (s *CatalogService) CreateDestination(ctx context.Context, d *models.Destination) error {
	if d == nil {
		return apperrors.Validation("destination is required")
	}
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return apperrors.Validation("name is required")
	}
	if d.Rating < 0 || d.Rating > 5 {
		return apperrors.Validation("rating must be between 0 and 5")
	}

	if err := s.DB.WithContext(ctx).Create(d).Error; err != nil {
		return apperrors.Internal("failed to create destination", err)
	}
	return nil
}
