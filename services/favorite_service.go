package services

import (
	"context"
	"fmt"

	"travel-backend/apperrors"
	"travel-backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteService struct {
	DB         *gorm.DB
	Catalog    DestinationResolver
	Activities ActivityRecorder
	Log        *zap.Logger
}

func NewFavoriteService(db *gorm.DB, catalog DestinationResolver, activities ActivityRecorder, log *zap.Logger) *FavoriteService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FavoriteService{DB: db, Catalog: catalog, Activities: activities, Log: log}
}

// AddFavorite inserts the (user, destination) pair if absent. created is
// false when the pair already existed; the stored record is returned either
// way and no activity is written for the duplicate.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, destinationID uint) (fav *models.Favorite, created bool, err error) {
	if userID == 0 || destinationID == 0 {
		return nil, false, apperrors.Validation("userId and destinationId are required")
	}

	f := models.Favorite{UserID: userID, DestinationID: destinationID}
	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&f)
	if res.Error != nil {
		if isForeignKeyError(res.Error) {
			return nil, false, apperrors.Validation("unknown user or destination")
		}
		return nil, false, apperrors.Internal("failed to add favorite", res.Error)
	}

	if res.RowsAffected == 0 {
		existing, err := s.find(ctx, userID, destinationID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	s.recordFavoriteActivity(ctx, &f)
	return &f, true, nil
}

func (s *FavoriteService) find(ctx context.Context, userID, destinationID uint) (*models.Favorite, error) {
	var f models.Favorite
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND destination_id = ?", userID, destinationID).
		First(&f).Error
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("favorite not found")
		}
		return nil, apperrors.Internal("failed to look up favorite", err)
	}
	return &f, nil
}

func (s *FavoriteService) recordFavoriteActivity(ctx context.Context, f *models.Favorite) {
	log := s.Log.With(zap.Uint("favorite_id", f.ID), zap.Uint("destination_id", f.DestinationID))

	dest, err := s.Catalog.GetDestination(ctx, f.DestinationID)
	if err != nil {
		log.Warn("favorite activity skipped: destination name unresolved", zap.Error(err))
		return
	}
	f.Destination = dest

	destID := dest.ID
	_, err = s.Activities.Record(ctx, RecordActivityInput{
		UserID:        f.UserID,
		Type:          models.ActivityTypeFavorite,
		Content:       fmt.Sprintf("Added %s to favorites", dest.Name),
		DestinationID: &destID,
	})
	if err != nil {
		log.Warn("favorite activity not recorded", zap.Error(err))
	}
}

// RemoveFavorite deletes by id. A missing id is not an error.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, id uint) error {
	if id == 0 {
		return apperrors.Validation("favorite id is required")
	}
	if err := s.DB.WithContext(ctx).Delete(&models.Favorite{}, id).Error; err != nil {
		return apperrors.Internal("failed to remove favorite", err)
	}
	return nil
}

func (s *FavoriteService) ListFavoritesForUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	if userID == 0 {
		return nil, apperrors.Validation("userId is required")
	}

	out := []models.Favorite{}
	err := s.DB.WithContext(ctx).
		Preload("Destination").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, apperrors.Internal("failed to retrieve favorites", err)
	}
	return out, nil
}
