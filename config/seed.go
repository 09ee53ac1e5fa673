package config

import (
	"travel-backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var defaultDestinations = []models.Destination{
	{Name: "Bali", Type: "Beach", Rating: 4.8, Description: "Tropical island with temples, rice terraces and surf beaches.", ImageURL: "/uploads/images/bali.jpg"},
	{Name: "Kyoto", Type: "Cultural", Rating: 4.7, Description: "Historic temples, gardens and traditional tea houses.", ImageURL: "/uploads/images/kyoto.jpg"},
	{Name: "Swiss Alps", Type: "Mountain", Rating: 4.9, Description: "Alpine villages, glaciers and ski resorts.", ImageURL: "/uploads/images/swiss-alps.jpg"},
	{Name: "Goa", Type: "Beach", Rating: 4.4, Description: "Beaches, Portuguese heritage and nightlife.", ImageURL: "/uploads/images/goa.jpg"},
	{Name: "Jaipur", Type: "Heritage", Rating: 4.5, Description: "The Pink City with forts and palaces.", ImageURL: "/uploads/images/jaipur.jpg"},
	{Name: "Banff", Type: "Nature", Rating: 4.8, Description: "Lakes and hiking trails in the Canadian Rockies.", ImageURL: "/uploads/images/banff.jpg"},
}

// SeedCatalog inserts the starter destinations when the catalog is empty.
func SeedCatalog(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Destination{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug("destinations already seeded", zap.Int64("count", count))
		return nil
	}

	destinations := make([]models.Destination, len(defaultDestinations))
	copy(destinations, defaultDestinations)
	if err := db.Create(&destinations).Error; err != nil {
		return err
	}
	log.Info("destinations seeded", zap.Int("count", len(destinations)))
	return nil
}
