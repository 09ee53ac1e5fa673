package services

import (
	"context"
	"path"
	"regexp"
	"strings"

	"travel-backend/apperrors"
	"travel-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UploadURLPrefix is where the router serves UploadDir from.
const UploadURLPrefix = "/uploads"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ContentService stores the static content around the catalog: images
// (linked or uploaded) and slug-addressed pages.
type ContentService struct {
	DB        *gorm.DB
	UploadDir string
}

func NewContentService(db *gorm.DB, uploadDir string) *ContentService {
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	return &ContentService{DB: db, UploadDir: uploadDir}
}

type CreateImageInput struct {
	Title         string
	URL           string
	Alt           string
	DestinationID *uint
	// Data is a base64 image; when present it is stored locally and URL is ignored.
	Data string
}

func (s *ContentService) CreateImage(ctx context.Context, in CreateImageInput) (*models.Image, error) {
	img := models.Image{
		Title:         strings.TrimSpace(in.Title),
		URL:           strings.TrimSpace(in.URL),
		Alt:           strings.TrimSpace(in.Alt),
		DestinationID: in.DestinationID,
	}
	if img.DestinationID != nil && *img.DestinationID == 0 {
		img.DestinationID = nil
	}

	if strings.TrimSpace(in.Data) != "" {
		rel, err := saveBase64Image(s.UploadDir, "images", in.Data)
		if err != nil {
			return nil, apperrors.ValidationFields("invalid image", map[string]string{"data": err.Error()})
		}
		img.URL = path.Join(UploadURLPrefix, rel)
	}
	if img.URL == "" {
		return nil, apperrors.Validation("url or data is required")
	}

	if err := s.DB.WithContext(ctx).Create(&img).Error; err != nil {
		if isForeignKeyError(err) {
			return nil, apperrors.Validation("unknown destination")
		}
		return nil, apperrors.Internal("failed to save image", err)
	}
	return &img, nil
}

func (s *ContentService) ListImages(ctx context.Context, destinationID *uint) ([]models.Image, error) {
	q := s.DB.WithContext(ctx).Model(&models.Image{})
	if destinationID != nil {
		q = q.Where("destination_id = ?", *destinationID)
	}

	out := []models.Image{}
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, apperrors.Internal("failed to list images", err)
	}
	return out, nil
}

func (s *ContentService) CreatePage(ctx context.Context, p *models.Page) error {
	if p == nil {
		return apperrors.Validation("page is required")
	}
	p.Slug = strings.ToLower(strings.TrimSpace(p.Slug))
	p.Title = strings.TrimSpace(p.Title)
	if p.Slug == "" || p.Title == "" {
		return apperrors.Validation("slug and title are required")
	}
	if !slugPattern.MatchString(p.Slug) {
		return apperrors.Validation("slug may only contain lowercase letters, digits and dashes")
	}
	if len(p.Body) == 0 {
		p.Body = datatypes.JSON("{}")
	}

	if err := s.DB.WithContext(ctx).Create(p).Error; err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.AlreadyExists("page slug already exists")
		}
		return apperrors.Internal("failed to create page", err)
	}
	return nil
}

func (s *ContentService) GetPage(ctx context.Context, slug string) (*models.Page, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, apperrors.Validation("slug is required")
	}

	var p models.Page
	if err := s.DB.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFoundf("page %q not found", slug)
		}
		return nil, apperrors.Internal("failed to load page", err)
	}
	return &p, nil
}

func (s *ContentService) ListPages(ctx context.Context) ([]models.Page, error) {
	out := []models.Page{}
	if err := s.DB.WithContext(ctx).Order("slug ASC").Find(&out).Error; err != nil {
		return nil, apperrors.Internal("failed to list pages", err)
	}
	return out, nil
}
